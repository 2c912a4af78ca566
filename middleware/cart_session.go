package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CartSessionCookie = "cart_session"
	CartSessionHeader = "X-Cart-Session"

	ctxCartSession = "cart_session"
)

// CartSession resolves the browsing session that owns the cart, minting a
// new one when the client has none. The id is echoed back in both the
// cookie and the header so non-browser clients can keep it.
func CartSession(ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(CartSessionHeader)
		if sid == "" {
			sid, _ = c.Cookie(CartSessionCookie)
		}
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CartSessionCookie, sid, int(ttl.Seconds()), "/", "", secure, true)
		c.Header(CartSessionHeader, sid)
		c.Set(ctxCartSession, sid)
		c.Next()
	}
}

func CartSessionID(c *gin.Context) string {
	return c.GetString(ctxCartSession)
}
