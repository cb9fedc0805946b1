package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"employee_web/internal/middleware"
	"employee_web/internal/service"
	"employee_web/internal/utils"
)

// AuthHandler 處理與認證相關的請求
type AuthHandler struct {
	authService *service.AuthService
	tokens      *utils.TokenManager
}

// NewAuthHandler 創建一個新的 AuthHandler 實例
func NewAuthHandler(authService *service.AuthService, tokens *utils.TokenManager) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

// Home 渲染首頁
func (h *AuthHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"Flash": PopFlash(c)})
}

// ShowRegister 渲染註冊表單
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Flash": PopFlash(c)})
}

// Register 處理帳號註冊
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	result, err := h.authService.Register(username, password)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// 帳號已存在時留在註冊頁顯示警告
	if result.Status == service.StatusWarning {
		c.HTML(http.StatusOK, "register.html", gin.H{"Flash": &result})
		return
	}

	SetFlash(c, result)
	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin 渲染登入表單
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Flash": PopFlash(c)})
}

// Login 處理帳號登入，成功時建立 session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	account, result, err := h.authService.Login(username, password)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// 驗證失敗時留在登入頁顯示訊息
	if account == nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"Flash": &result})
		return
	}

	token, err := h.tokens.Generate(account.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, int(h.tokens.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout 清除 session cookie 並導回首頁
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	SetFlash(c, service.Result{Status: service.StatusInfo, Message: "🔒 已登出"})
	c.Redirect(http.StatusFound, "/")
}
