package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"employee_web/internal/api"
	"employee_web/internal/config"
	"employee_web/internal/models"
	"employee_web/internal/repository"
	"employee_web/internal/service"
	"employee_web/internal/storage"
	"employee_web/internal/utils"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化資料庫連接
	// 預設使用 SQLite，資料庫文件會在第一次啟動時建立
	db, err := storage.NewDB(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	// 確保在程序結束時關閉資料庫連接
	defer db.Close()

	// 自動遷移資料庫結構
	// 根據定義的模型自動創建或更新資料表，這裡遷移 Account 和 Employee 兩個模型
	if err := db.AutoMigrate(&models.Account{}, &models.Employee{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 初始化 repositories 與 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	// 初始化 session token 管理器
	tokens := utils.NewTokenManager(cfg.Session.Secret, time.Duration(cfg.Session.TTLHours)*time.Hour)

	// 設置 Gin 路由與頁面模板
	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*")
	api.SetupRoutes(r, services, tokens)

	// 啟動伺服器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
