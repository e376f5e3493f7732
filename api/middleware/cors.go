package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORS returns middleware for the storefront-facing API. Submissions arrive
// from arbitrary merchant storefront domains, so any https origin is allowed;
// plain http is only accepted for localhost development.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			if strings.HasPrefix(origin, "https://") {
				return true
			}
			return strings.HasPrefix(origin, "http://localhost:") || origin == "http://localhost"
		},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Attribution-Token", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
