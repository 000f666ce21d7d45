package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS lets a browser front-end on another origin read the simulation API.
// rs/cors treats an empty origin list as "*", so only install it with origins.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Content-Disposition"},
		MaxAge:         600,
	})
	return c.Handler
}
