// Package server wires the portfolio's HTTP routes onto a gin engine.
package server

import (
	"context"
	"crypto/rand"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Santi2307/santi-portfolio/internal/config"
	"github.com/Santi2307/santi-portfolio/internal/contact"
	"github.com/Santi2307/santi-portfolio/internal/logger"
	"github.com/Santi2307/santi-portfolio/internal/store"
	"github.com/Santi2307/santi-portfolio/internal/typewriter"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Visits is the visitor tracking persistence.
type Visits interface {
	RecordVisit(ctx context.Context, ip, userAgent, path string) error
	HashIP(ip string) string
}

// AdminStore backs the admin API.
type AdminStore interface {
	Stats(ctx context.Context) (*store.Stats, error)
	RecentMessages(ctx context.Context, limit int) ([]store.Message, error)
	RecentVisits(ctx context.Context, limit int) ([]store.Visit, error)
	Ping(ctx context.Context) error
}

// Submitter handles contact form submissions.
type Submitter interface {
	Submit(ctx context.Context, sub contact.Submission) (*store.Message, error)
}

type Deps struct {
	Visits  Visits
	Admin   AdminStore
	Contact Submitter
	Log     *logger.Logger

	AdminCredentials config.Admin
	// AdminToken authenticates the admin cookie. Generated when empty.
	AdminToken string

	// VisitorRetention is shown on the privacy page.
	VisitorRetention time.Duration

	Typewriter typewriter.Config
	// Clock drives hero animations; the system clock when nil.
	Clock typewriter.Clock
}

type Server struct {
	deps       Deps
	log        *logger.Logger
	adminToken string
	clock      typewriter.Clock
}

func New(deps Deps) (*Server, error) {
	if err := deps.Typewriter.Validate(); err != nil {
		return nil, err
	}

	token := deps.AdminToken
	if token == "" {
		var err error
		if token, err = NewToken(); err != nil {
			return nil, err
		}
	}

	clock := deps.Clock
	if clock == nil {
		clock = typewriter.SystemClock
	}

	return &Server{
		deps:       deps,
		log:        deps.Log.With("http"),
		adminToken: token,
		clock:      clock,
	}, nil
}

// NewToken returns 32 random bytes hex-encoded.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Router builds the engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogging(), s.visitorTracking())

	r.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")))

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.GET("/", s.index)
	r.GET("/healthz", s.health)
	r.GET("/sections/skills", s.skillsSection)
	r.GET("/sections/projects", s.projectsSection)
	r.GET("/hero/stream", s.heroStream)
	r.POST("/theme/toggle", s.toggleTheme)
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)

	s.setupAdminRoutes(r)

	return r
}

var templateFuncs = template.FuncMap{
	"year": func() int { return time.Now().Year() },
}
