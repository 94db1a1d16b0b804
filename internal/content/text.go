// Package content holds the hard-coded copy and data tables shown on the site.
package content

var (
	Owner = "Santiago Delgado"

	Greeting = "Hi, I'm Santiago."

	JobTitles = []string{
		"Web Developer.",
		"Systems Engineer.",
		"IT Student.",
		"Network Analyst.",
		"Colombian in Canada.",
		"Enthusiastic.",
		"Adaptable.",
		"Lifelong Learner.",
	}

	HeroIntro = `I'm an aspiring IT professional from Colombia currently in Toronto, Canada who's genuinely
	fascinated by technology and how it connects people. I love helping others solve problems, whether it's
	fixing a computer glitch or making tech feel less intimidating.`

	AboutMe = `I'm a Computer Systems Technology student at Seneca Polytechnic with a foot in both software
	development and systems administration. I enjoy building web applications end to end, automating the
	boring parts of running servers, and learning how networks actually move data around.`

	ProjectsIntro = `Here are some of my recent projects, showcasing my skills as a Computer Systems Technology
	student at Seneca Polytechnic.`

	ContactIntro = "Come and say hi, I will respond as soon as possible to your message."
)

type Contact struct {
	Email    string
	Phone    string
	PhoneURI string
	Location string
}

var ContactInfo = Contact{
	Email:    "santiagodelgadosanchez9@gmail.com",
	Phone:    "+1 (437) 661-6843",
	PhoneURI: "tel:+14376616843",
	Location: "Toronto, ON, Canada",
}

type Link struct {
	Label string
	Href  string
}

var SocialLinks = []Link{
	{Label: "LinkedIn", Href: "https://www.linkedin.com/in/santiagodelgado23"},
	{Label: "GitHub", Href: "https://github.com/Santi2307"},
	{Label: "Instagram", Href: "https://www.instagram.com/santidelgado2004"},
}

// NavItems are the in-page anchors shown in the navigation bar.
var NavItems = []Link{
	{Label: "Home", Href: "#hero"},
	{Label: "About", Href: "#about"},
	{Label: "Skills", Href: "#skills"},
	{Label: "Projects", Href: "#projects"},
	{Label: "Contact", Href: "#contact"},
}

// Service is one of the cards in the About section.
type Service struct {
	Title       string
	Description string
}

var Services = []Service{
	{Title: "Web Development", Description: "Creating responsive websites and web applications with modern frameworks."},
	{Title: "UI/UX Design", Description: "Designing intuitive user interfaces and seamless user experiences."},
	{Title: "Project Management", Description: "Leading projects from conception to completion with agile methodologies."},
	{Title: "Systems & Networking", Description: "Managing and troubleshooting Windows, Linux, and macOS systems and networks."},
}
