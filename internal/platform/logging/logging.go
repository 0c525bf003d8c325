package logging

import (
	"io"
	"log/slog"

	"github.com/go-chi/httplog/v3"
)

const appName = "payslipcalc"

// New returns a JSON logger whose attribute names follow the ECS schema used
// by the request logger.
func New(w io.Writer, level slog.Level, env string) *slog.Logger {
	schema := httplog.SchemaECS.Concise(env != "production")
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: schema.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("env", env),
	)
}
