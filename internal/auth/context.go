package auth

import "github.com/gin-gonic/gin"

const userIDKey = "firebase_uid"

// UserID returns the authenticated Firebase uid, or "" when the request
// passed through without auth (e.g. auth middleware disabled).
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// SetUserID stashes the authenticated uid on the request context.
func SetUserID(c *gin.Context, uid string) {
	c.Set(userIDKey, uid)
}
