// Package logger configures the process-wide zerolog logger and provides
// a gin middleware that logs one line per request.
package logger

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// New builds the application logger. In debug mode output is the
// human-readable console writer; in release mode it is JSON.
func New(ginMode string) zerolog.Logger {
	if ginMode == gin.ReleaseMode {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	return zerolog.New(out).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// RequestLogger logs method, path, status, and duration for every request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
