package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"employee_web/internal/utils"
)

// SessionCookieName 是存放 session token 的 cookie 名稱
const SessionCookieName = "session"

// SessionRequired 是一個 Gin 中間件，用於驗證請求的 session cookie
// 未登入或 token 失效時導向登入頁，而不是回傳錯誤頁面
func SessionRequired(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// 將帳號資訊設置到上下文中，後續 handler 由此取得目前登入者
		c.Set("accountID", claims.AccountID)
		c.Next()
	}
}
