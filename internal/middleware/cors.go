package middleware

import (
	"regexp"
	"strings"

	"github.com/Karan28272827/testurself-backend/internal/config"
	"github.com/Karan28272827/testurself-backend/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

// CORS builds the cross-origin policy: an allow-list of exact origins plus a
// regex-matched pattern family (frontend preview deployments), with
// credentials permitted and all methods/headers allowed.
func CORS(cfg config.CORSConfig) fiber.Handler {
	allowed := make(map[string]struct{}, len(cfg.AllowOrigins))
	for _, origin := range cfg.AllowOrigins {
		allowed[strings.TrimRight(origin, "/")] = struct{}{}
	}

	var pattern *regexp.Regexp
	if cfg.OriginPattern != "" {
		var err error
		pattern, err = regexp.Compile(cfg.OriginPattern)
		if err != nil {
			logger.Get().Warn("Invalid CORS origin pattern, falling back to allow-list only",
				zap.String("pattern", cfg.OriginPattern),
				zap.Error(err),
			)
		}
	}

	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			if _, ok := allowed[origin]; ok {
				return true
			}
			return pattern != nil && pattern.MatchString(origin)
		},
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
	})
}
