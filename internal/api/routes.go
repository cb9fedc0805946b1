package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"employee_web/internal/api/handlers"
	"employee_web/internal/middleware"
	"employee_web/internal/service"
	"employee_web/internal/utils"
)

func SetupRoutes(r *gin.Engine, services *service.Services, tokens *utils.TokenManager) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.Auth, tokens)
	employeeHandler := handlers.NewEmployeeHandler(services.Employee)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "404 - 找不到該路徑")
	})

	// 公開路由
	{
		r.GET("/", authHandler.Home)
		r.GET("/register", authHandler.ShowRegister)
		r.POST("/register", authHandler.Register)
		r.GET("/login", authHandler.ShowLogin)
		r.POST("/login", authHandler.Login)
	}

	// 需要登入的路由
	authorized := r.Group("/")
	authorized.Use(middleware.SessionRequired(tokens))
	{
		authorized.GET("/logout", authHandler.Logout)
		authorized.GET("/dashboard", employeeHandler.Dashboard)
		authorized.POST("/add", employeeHandler.Add)
		authorized.GET("/delete/:id", employeeHandler.Delete)
		authorized.GET("/update/:id", employeeHandler.ShowUpdate)
		authorized.POST("/update/:id", employeeHandler.Update)
	}
}
