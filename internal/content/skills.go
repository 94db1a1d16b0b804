package content

// All selects every entry in a filter.
const All = "All"

type Skill struct {
	Name     string
	Level    int // 0-100
	Category string
}

var Skills = []Skill{
	{Name: "HTML/CSS", Level: 95, Category: "Featured Skills"},
	{Name: "React", Level: 90, Category: "Featured Skills"},
	{Name: "Linux", Level: 85, Category: "Featured Skills"},
	{Name: "Git/GitHub", Level: 90, Category: "Featured Skills"},
	{Name: "Docker", Level: 70, Category: "Featured Skills"},

	{Name: "HTML/CSS", Level: 95, Category: "Software Development"},
	{Name: "JavaScript", Level: 90, Category: "Software Development"},
	{Name: "React", Level: 90, Category: "Software Development"},
	{Name: "TypeScript", Level: 85, Category: "Software Development"},
	{Name: "Tailwind CSS", Level: 90, Category: "Software Development"},
	{Name: "Next.js", Level: 80, Category: "Software Development"},
	{Name: "Node.js", Level: 80, Category: "Software Development"},
	{Name: "Express", Level: 75, Category: "Software Development"},
	{Name: "MongoDB", Level: 70, Category: "Software Development"},

	{Name: "Windows Server", Level: 90, Category: "Systems & Networking"},
	{Name: "Linux", Level: 85, Category: "Systems & Networking"},
	{Name: "Cisco Networking", Level: 75, Category: "Systems & Networking"},
	{Name: "VMware", Level: 80, Category: "Systems & Networking"},
	{Name: "Bash/PowerShell", Level: 85, Category: "Systems & Networking"},
	{Name: "Cloud Security", Level: 70, Category: "Systems & Networking"},

	{Name: "Azure", Level: 75, Category: "Cloud"},
	{Name: "AWS", Level: 70, Category: "Cloud"},

	{Name: "Git/GitHub", Level: 90, Category: "Tools"},
	{Name: "Docker", Level: 70, Category: "Tools"},
	{Name: "Figma", Level: 85, Category: "Tools"},
	{Name: "VS Code", Level: 95, Category: "Tools"},
}

var SkillCategories = []string{All, "Featured Skills", "Software Development", "Systems & Networking", "Cloud", "Tools"}

// FilterSkills returns the skills in category, or all of them for All or "".
func FilterSkills(category string) []Skill {
	if category == "" || category == All {
		return Skills
	}
	var out []Skill
	for _, s := range Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
