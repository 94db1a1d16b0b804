package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSkills(t *testing.T) {
	tests := []struct {
		category string
		want     []string
	}{
		{category: "Cloud", want: []string{"Azure", "AWS"}},
		{category: "Tools", want: []string{"Git/GitHub", "Docker", "Figma", "VS Code"}},
		{category: "Cooking", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			var got []string
			for _, s := range FilterSkills(tt.category) {
				got = append(got, s.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterSkills_All(t *testing.T) {
	assert.Equal(t, Skills, FilterSkills(All))
	assert.Equal(t, Skills, FilterSkills(""))
}

func TestSkillLevelsInRange(t *testing.T) {
	for _, s := range Skills {
		assert.GreaterOrEqual(t, s.Level, 0, s.Name)
		assert.LessOrEqual(t, s.Level, 100, s.Name)
		assert.Contains(t, SkillCategories, s.Category, s.Name)
	}
}

func TestProjectCategories(t *testing.T) {
	assert.Equal(t,
		[]string{All, "Full-Stack", "Systems & Networking", "Security", "Data Analytics"},
		ProjectCategories(),
	)
}

func TestFilterProjects(t *testing.T) {
	got := FilterProjects("Full-Stack")

	if assert.Len(t, got, 2) {
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 6, got[1].ID)
	}
	assert.Len(t, FilterProjects(All), len(Projects))
	assert.Empty(t, FilterProjects("Nope"))
}

func TestHeroPhrasesNonEmpty(t *testing.T) {
	assert.NotEmpty(t, Greeting)
	assert.NotEmpty(t, JobTitles)
	for _, title := range JobTitles {
		assert.NotEmpty(t, title)
	}
}

func TestServices(t *testing.T) {
	var titles []string
	for _, s := range Services {
		assert.NotEmpty(t, s.Description, s.Title)
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"Web Development", "UI/UX Design", "Project Management", "Systems & Networking"}, titles)
}
