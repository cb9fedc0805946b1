package handlers

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"employee_web/internal/service"
)

const flashCookieName = "flash"

// SetFlash 將操作結果放進短效 cookie，讓轉址後的頁面顯示一次
func SetFlash(c *gin.Context, result service.Result) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	c.SetCookie(flashCookieName, base64.URLEncoding.EncodeToString(data), 60, "/", "", false, true)
}

// PopFlash 取出 flash 訊息並清除 cookie，沒有訊息時回傳 nil
func PopFlash(c *gin.Context) *service.Result {
	raw, err := c.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var result service.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	return &result
}
