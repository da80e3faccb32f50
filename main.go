package main

import (
	"context"
	"flag"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hanif-mianjee/news-aggregator/config"
	"github.com/hanif-mianjee/news-aggregator/internal/handler"
	"github.com/hanif-mianjee/news-aggregator/internal/logger"
	"github.com/hanif-mianjee/news-aggregator/internal/model"
	"github.com/hanif-mianjee/news-aggregator/internal/provider"
	"github.com/hanif-mianjee/news-aggregator/internal/scheduler"
	"github.com/hanif-mianjee/news-aggregator/internal/service"
	"github.com/hanif-mianjee/news-aggregator/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	fetchOnly := flag.Bool("fetch", false, "只执行一次抓取后退出")
	flag.Parse()

	log := logger.New("news-aggregator")

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("加载配置失败", "error", err)
		os.Exit(1)
	}

	// 初始化数据库
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
	if err != nil {
		log.Error("连接数据库失败", "error", err)
		os.Exit(1)
	}

	// 自动迁移
	if err := db.AutoMigrate(&model.Article{}, &model.User{}, &model.UserPreference{}); err != nil {
		log.Error("数据库迁移失败", "error", err)
		os.Exit(1)
	}

	// 初始化默认用户
	seedDefaultUser(db)

	// 初始化服务
	providers := provider.Registry(cfg.Providers)
	articles := store.NewArticleStore(db)
	ingestSvc := service.NewIngestService(providers, articles, log.With("component", "ingest"))

	// 手动抓取模式:跑一轮后按结果退出
	if *fetchOnly {
		if _, err := ingestSvc.Run(context.Background()); err != nil {
			log.Error("抓取失败", "error", err)
			os.Exit(1)
		}
		log.Info("Articles fetched successfully!")
		return
	}

	// 启动定时任务
	sched := scheduler.NewScheduler(ingestSvc, cfg.Cron, log.With("component", "cron"))
	sched.Start()
	defer sched.Stop()

	// 初始化Gin
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	// 注册路由
	h := handler.NewHandler(db, cfg, ingestSvc)
	h.SetScheduler(sched)
	h.RegisterRoutes(r)

	// 启动服务
	log.Info("Server starting", "addr", cfg.GetServerAddress())
	if err := r.Run(cfg.GetServerAddress()); err != nil {
		log.Error("服务退出", "error", err)
		os.Exit(1)
	}
}

func seedDefaultUser(db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	db.Where("email = ?", "john.doe@example.com").
		FirstOrCreate(&model.User{
			Name:     "John",
			Email:    "john.doe@example.com",
			Password: string(hashed),
		})
}
