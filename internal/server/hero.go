package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santi2307/santi-portfolio/internal/content"
	"github.com/Santi2307/santi-portfolio/internal/typewriter"
)

// heroStream streams typewriter frames as server-sent events. mode=greeting
// types the greeting once and ends with a done event; mode=titles (the
// default) rotates the job titles until the client goes away.
func (s *Server) heroStream(c *gin.Context) {
	var (
		phrases []string
		mode    typewriter.Mode
	)
	switch c.DefaultQuery("mode", "titles") {
	case "greeting":
		phrases, mode = []string{content.Greeting}, typewriter.OneShot
	case "titles":
		phrases, mode = content.JobTitles, typewriter.Loop
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be greeting or titles"})
		return
	}

	ctx := c.Request.Context()
	frames, h, err := typewriter.Stream(ctx, phrases,
		typewriter.WithConfig(s.deps.Typewriter),
		typewriter.WithMode(mode),
		typewriter.WithClock(s.clock),
	)
	if err != nil {
		reqLog(c).Error().Err(err).Msg("error starting hero animation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "animation unavailable"})
		return
	}
	defer h.Cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case text := <-frames:
			c.SSEvent("text", text)
			return true
		case <-h.Done():
			c.SSEvent("done", "")
			return false
		case <-ctx.Done():
			return false
		}
	})
}
