package server

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Santi2307/santi-portfolio/internal/content"
)

const (
	dashboardMessages = 20
	visitorsPageSize  = 200
)

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", s.privacy)
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", s.adminLogout)

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())
	admin.GET("/dashboard", s.adminDashboard)
	admin.GET("/visitors", s.adminVisitors)
	admin.GET("/api/stats", s.adminStats)
	admin.GET("/api/messages", s.adminMessages)
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) hashedClient(c *gin.Context) string {
	if s.deps.Visits == nil {
		return ""
	}
	return s.deps.Visits.HashIP(c.ClientIP())
}

func (s *Server) adminLogin(c *gin.Context) {
	creds := s.deps.AdminCredentials
	username, password := c.PostForm("username"), c.PostForm("password")

	if creds.Username == "" || creds.Password == "" ||
		!equal(username, creds.Username) || !equal(password, creds.Password) {
		reqLog(c).Warn().Str("client", s.hashedClient(c)).Msg("failed admin login attempt")
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
	reqLog(c).Info().Str("client", s.hashedClient(c)).Msg("admin login successful")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) adminLogout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title":         "Privacy Policy",
		"owner":         content.Owner,
		"email":         content.ContactInfo.Email,
		"retentionDays": int(s.deps.VisitorRetention.Hours() / 24),
	})
}

func (s *Server) adminError(c *gin.Context, err error, msg string) {
	reqLog(c).Error().Err(err).Msg(msg)
	c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
		"title": "Admin Error",
		"error": msg,
	})
}

func (s *Server) adminDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	stats, err := s.deps.Admin.Stats(ctx)
	if err != nil {
		s.adminError(c, err, "Failed to load statistics")
		return
	}
	msgs, err := s.deps.Admin.RecentMessages(ctx, dashboardMessages)
	if err != nil {
		s.adminError(c, err, "Failed to load messages")
		return
	}

	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"title":    "Dashboard",
		"stats":    stats,
		"messages": msgs,
	})
}

func (s *Server) adminVisitors(c *gin.Context) {
	visits, err := s.deps.Admin.RecentVisits(c.Request.Context(), visitorsPageSize)
	if err != nil {
		s.adminError(c, err, "Failed to load visitors")
		return
	}
	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
		"title":    "Visitors",
		"visitors": visits,
	})
}

func (s *Server) adminStats(c *gin.Context) {
	stats, err := s.deps.Admin.Stats(c.Request.Context())
	if err != nil {
		reqLog(c).Error().Err(err).Msg("error loading admin stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminMessages(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
		return
	}

	msgs, err := s.deps.Admin.RecentMessages(c.Request.Context(), limit)
	if err != nil {
		reqLog(c).Error().Err(err).Msg("error loading messages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
