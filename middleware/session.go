package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderSessionID nối các request của cùng một phiên đặt phòng
const HeaderSessionID = "X-Session-ID"

// SessionKey là key đọc sessionId từ gin.Context
const SessionKey = "sessionId"

// SessionMiddleware gán sessionId cho request, client chưa gửi thì tự sinh
// và trả lại qua header để các request sau dùng tiếp
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(HeaderSessionID)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(SessionKey, sessionID)
		c.Writer.Header().Set(HeaderSessionID, sessionID)

		c.Next()
	}
}
