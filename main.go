package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Santi2307/santi-portfolio/internal/config"
	"github.com/Santi2307/santi-portfolio/internal/contact"
	"github.com/Santi2307/santi-portfolio/internal/logger"
	"github.com/Santi2307/santi-portfolio/internal/server"
	"github.com/Santi2307/santi-portfolio/internal/store"
)

func main() {
	log := logger.NewLogger("portfolio")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	salt, err := server.NewToken()
	if err != nil {
		log.Fatal().Err(err).Msg("error generating hashing salt")
	}
	st, err := store.Open(ctx, cfg.DatabasePath, salt)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database")
	}
	defer st.Close()
	log.Info().Msg("Privacy: visitor tracking enabled with hashed IP addresses")

	go cleanupVisitors(ctx, st, cfg.VisitorRetention, log)

	srv, err := server.New(server.Deps{
		Visits:           st,
		Admin:            st,
		Contact:          contact.NewService(st, newForwarder(cfg, log), log),
		Log:              log,
		AdminCredentials: cfg.Admin,
		VisitorRetention: cfg.VisitorRetention,
		Typewriter:       cfg.Typewriter.Animator(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error building server")
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error shutting down")
		}
	}()

	log.Info().Str("addr", httpServer.Addr).Msg("portfolio listening")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newForwarder prefers the form backend, then SMTP. Without either,
// messages are only stored.
func newForwarder(cfg *config.Config, log *logger.Logger) contact.Forwarder {
	switch {
	case cfg.Contact.FormspreeEndpoint != "":
		return contact.NewFormspreeForwarder(cfg.Contact.FormspreeEndpoint, cfg.Contact.Timeout)
	case cfg.SMTP.Configured():
		return contact.NewSMTPForwarder(contact.SMTPConfig{
			Host:    cfg.SMTP.Host,
			Port:    cfg.SMTP.Port,
			User:    cfg.SMTP.User,
			Pass:    cfg.SMTP.Pass,
			ToEmail: cfg.Contact.ToEmail,
		})
	default:
		log.Warn().Msg("no contact forwarder configured, messages are stored only")
		return nil
	}
}

// cleanupVisitors drops visits past the retention window once at startup
// and then daily.
func cleanupVisitors(ctx context.Context, st *store.Store, retention time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		removed, err := st.CleanupVisits(ctx, retention)
		if err != nil {
			log.Error().Err(err).Msg("error cleaning up old visitor data")
		} else if removed > 0 {
			log.Info().Int64("removed", removed).Msg("privacy cleanup removed old visitor records")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
