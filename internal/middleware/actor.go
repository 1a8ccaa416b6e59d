package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const actorKey = contextKey("actor")

// ActorHeader carries the identity of the acting user. Authentication is the
// calling layer's responsibility; this service only records who acted.
const ActorHeader = "X-Actor-ID"

// ActorMiddleware requires the X-Actor-ID header on every request and stores
// its value in the request context for audit stamping.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(ActorHeader)
		if actor == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + ActorHeader + " header"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), actorKey, actor)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetActorFromContext retrieves the acting user's identity from the context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok || actor == "" {
		return "", false
	}
	return actor, true
}
