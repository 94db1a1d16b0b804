package server

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Santi2307/santi-portfolio/internal/logger"
)

const adminCookie = "admin_token"

const requestIDHeader = "X-Request-ID"

// requestLogging tags each request with an id and attaches a logger carrying
// it to the request context, so handlers log through logger.FromContext.
func (s *Server) requestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := uuid.NewString()
		l := &logger.Logger{Logger: s.log.Logger.With().Str("request_id", id).Logger()}
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))
		c.Header(requestIDHeader, id)

		c.Next()

		l.Info().
			Str("uri", c.Request.URL.RequestURI()).
			Str("method", c.Request.Method).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Int("size", c.Writer.Size()).
			Send()
	}
}

// HTMX fragments are part of a page already counted.
var untrackedPrefixes = []string{
	"/static/", "/images/", "/admin/", "/favicon", "/healthz",
	"/hero/stream", "/sections/", "/contact-form",
}

func tracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// visitorTracking records page views with hashed IPs. Static assets, admin
// pages, fragments, health checks and animation streams are skipped, and so
// is every request carrying DNT: 1.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if s.deps.Visits == nil || c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" || !tracked(path) {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		log := logger.FromContext(c.Request.Context())
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.deps.Visits.RecordVisit(ctx, ip, ua, path); err != nil {
				log.Error().Err(err).Msg("error recording visitor")
			}
		}()
		c.Next()
	}
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			if strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func reqLog(c *gin.Context) *logger.Logger {
	return logger.FromContext(c.Request.Context())
}
