package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santi2307/santi-portfolio/internal/contact"
	"github.com/Santi2307/santi-portfolio/internal/content"
	"github.com/Santi2307/santi-portfolio/internal/theme"
)

const themeCookieMaxAge = 365 * 24 * 3600

func currentTheme(c *gin.Context) theme.Theme {
	persisted, _ := c.Cookie(theme.CookieName)
	return theme.Resolve(persisted, c.GetHeader(theme.HintHeader))
}

func skillsData(category string) gin.H {
	if category == "" {
		category = content.All
	}
	return gin.H{
		"skillCategories": content.SkillCategories,
		"activeSkills":    category,
		"skills":          content.FilterSkills(category),
	}
}

func projectsData(category string) gin.H {
	if category == "" {
		category = content.All
	}
	return gin.H{
		"projectCategories": content.ProjectCategories(),
		"activeProjects":    category,
		"projects":          content.FilterProjects(category),
	}
}

func (s *Server) index(c *gin.Context) {
	c.Header("Accept-CH", theme.HintHeader)

	data := gin.H{
		"owner":         content.Owner,
		"themeClass":    currentTheme(c).Class(),
		"nav":           content.NavItems,
		"greeting":      content.Greeting,
		"heroIntro":     content.HeroIntro,
		"aboutMe":       content.AboutMe,
		"services":      content.Services,
		"projectsIntro": content.ProjectsIntro,
		"contactIntro":  content.ContactIntro,
		"contactInfo":   content.ContactInfo,
		"socialLinks":   content.SocialLinks,
	}
	for k, v := range skillsData(c.Query("skills")) {
		data[k] = v
	}
	for k, v := range projectsData(c.Query("projects")) {
		data[k] = v
	}

	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) skillsSection(c *gin.Context) {
	c.HTML(http.StatusOK, "skills.html", skillsData(c.Query("category")))
}

func (s *Server) projectsSection(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", projectsData(c.Query("category")))
}

func (s *Server) health(c *gin.Context) {
	if s.deps.Admin != nil {
		if err := s.deps.Admin.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// toggleTheme flips the resolved theme and persists the new choice.
func (s *Server) toggleTheme(c *gin.Context) {
	next := currentTheme(c).Toggle()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(theme.CookieName, string(next), themeCookieMaxAge, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"theme": next})
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", gin.H{
		"title": "Get In Touch",
	})
}

// submitContact answers with an HTML fragment in every case so the form
// can swap it in place.
func (s *Server) submitContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	_, err := s.deps.Contact.Submit(c.Request.Context(), sub)
	switch {
	case errors.Is(err, contact.ErrEmptySubmission):
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
	case err != nil:
		reqLog(c).Error().Err(err).Msg("error handling contact submission")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
	default:
		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message. I'll get back to you soon.",
		})
	}
}
