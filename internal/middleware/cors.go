package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// CORS allows the local dev front-ends plus any configured origins.
// Preflight requests are answered before auth middleware runs.
func CORS(extraOrigins []string) gin.HandlerFunc {
	origins := append([]string{}, defaultOrigins...)
	for _, o := range extraOrigins {
		if o != "" {
			origins = append(origins, o)
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Authorization", "Accept", "Origin", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	})
}
