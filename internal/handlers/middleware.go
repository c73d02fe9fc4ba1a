package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookie = "visitor_id"
	visitorKey    = "visitorID"
)

// VisitorMiddleware identifies the visitor by cookie, issuing a new ID when the
// cookie is missing or malformed.
func VisitorMiddleware(maxAge time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID, err := c.Cookie(visitorCookie)
		if err != nil || uuid.Validate(visitorID) != nil {
			visitorID = uuid.NewString()
		}
		// refresh on every request so the cookie outlives activity, not creation
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(visitorCookie, visitorID, int(maxAge.Seconds()), "/", "", secure, true)
		c.Set(visitorKey, visitorID)
		c.Next()
	}
}

// visitorID returns the ID set by VisitorMiddleware.
func visitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}

// CORS allows an externally hosted front end to call the JSON API.
// No origins means same-origin only. A "*" origin is allowed without credentials;
// listed origins may send the visitor cookie.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
