package content

type Project struct {
	ID          int
	Title       string
	Description string
	Image       string
	Category    string
	Tags        []string
	DemoURL     string
	GithubURL   string
}

var Projects = []Project{
	{
		ID:          1,
		Title:       "Full-Stack Project Management Dashboard",
		Description: "A complete full-stack solution for managing tasks, projects, and user roles. Demonstrates skills in API design, database management, and modern front-end frameworks.",
		Image:       "/images/projects/project1.png",
		Category:    "Full-Stack",
		Tags:        []string{"React", "Node.js", "MongoDB", "Express", "REST API"},
		DemoURL:     "#",
		GithubURL:   "#",
	},
	{
		ID:          2,
		Title:       "Cloud Infrastructure Automation",
		Description: "Automated deployment of a web server on a cloud provider (AWS/Azure) using scripting and IaC. Showcases skills in cloud computing, scripting, and CI/CD.",
		Image:       "/images/projects/project2.png",
		Category:    "Systems & Networking",
		Tags:        []string{"Azure", "AWS", "Terraform", "Bash", "Docker"},
		DemoURL:     "#",
		GithubURL:   "#",
	},
	{
		ID:          3,
		Title:       "Secure Network Configuration Tool",
		Description: "A Python-based tool for auditing and configuring network devices (Cisco) for security compliance. Highlights skills in networking, security, and Python scripting.",
		Image:       "/images/projects/project3.png",
		Category:    "Security",
		Tags:        []string{"Python", "Cisco", "Security", "Networking"},
		DemoURL:     "#",
		GithubURL:   "#",
	},
	{
		ID:          4,
		Title:       "Real-time Monitoring Dashboard",
		Description: "A dashboard that visualizes real-time system metrics (CPU, RAM, disk) from servers. Demonstrates data handling, real-time communication (WebSockets), and data visualization.",
		Image:       "/images/projects/project4.png",
		Category:    "Data Analytics",
		Tags:        []string{"React", "D3.js", "WebSockets", "Node.js"},
		DemoURL:     "#",
		GithubURL:   "#",
	},
	{
		ID:          5,
		Title:       "Automated Backup & Recovery Script",
		Description: "A script to automate backups of critical data and restore them in case of failure. Essential for showcasing systems administration and scripting skills.",
		Image:       "/images/projects/project5.png",
		Category:    "Systems & Networking",
		Tags:        []string{"Bash", "Linux", "cron", "Automation"},
		DemoURL:     "#",
		GithubURL:   "#",
	},
	{
		ID:          6,
		Title:       "Containerized Web Application",
		Description: "A web application containerized with Docker, demonstrating knowledge of microservices architecture and deployment strategies.",
		Image:       "/images/projects/project6.png",
		Category:    "Full-Stack",
		Tags:        []string{"Docker", "React", "Node.js", "Nginx"},
		DemoURL:     "#",
		GithubURL:   "#",
	},
}

// ProjectCategories lists All followed by each project category in the
// order it first appears.
func ProjectCategories() []string {
	seen := make(map[string]bool)
	out := []string{All}
	for _, p := range Projects {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// FilterProjects returns the projects in category, or all of them for All
// or "".
func FilterProjects(category string) []Project {
	if category == "" || category == All {
		return Projects
	}
	var out []Project
	for _, p := range Projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
