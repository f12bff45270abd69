package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"CricketStats/internal/adapter"
	"CricketStats/internal/api"
	"CricketStats/internal/config"
	"CricketStats/internal/metrics"
	"CricketStats/internal/model"
	"CricketStats/internal/repository"
	"CricketStats/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// 1. 加载配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("加载配置文件失败: %v", err)
	}

	// 2. 初始化日志
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(logrus.InfoLevel)
	if cfg.Server.Mode == gin.DebugMode {
		logrusLogger.SetLevel(logrus.DebugLevel)
	}
	logrusLogger.Info("配置文件加载成功")

	// 3. GORM日志只输出慢查询与错误，导入时的批量INSERT不刷屏
	gormLogger := logger.Default.LogMode(logger.Warn)

	// 4. 初始化 PostgreSQL 连接（库不存在则先创建再连）
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		if strings.Contains(err.Error(), "does not exist") || strings.Contains(err.Error(), "3D000") {
			logrusLogger.Info("目标数据库不存在，尝试自动创建…")
			if e := repository.EnsureDatabase(context.Background(), cfg.Database.DSN); e != nil {
				logrusLogger.Fatalf("创建数据库失败: %v", e)
			}
			db, err = gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{Logger: gormLogger})
		}
		if err != nil {
			logrusLogger.Fatalf("连接PostgreSQL失败: %v", err)
		}
	}
	logrusLogger.Info("PostgreSQL连接成功")

	// 5. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		logrusLogger.Fatalf("获取SQL DB失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 6. 库表不存在则自动创建
	if err := db.AutoMigrate(
		&model.BattingRecord{},
		&model.BowlingRecord{},
	); err != nil {
		logrusLogger.Fatalf("数据库表结构迁移失败: %v", err)
	}
	logrusLogger.Info("数据库表结构检查完成（不存在则已创建）")

	// 7. 组装仓储与服务
	recorder := metrics.NewRecorder()
	repo := repository.NewRecordRepository(db)
	statsService := service.NewStatsService(repo, cfg.Stats, logrusLogger)
	importService := service.NewImportService(repo, cfg.Stats, recorder, logrusLogger)
	collector, err := adapter.NewCollector(cfg.Collector.Source, &cfg.Collector, logrusLogger)
	if err != nil {
		logrusLogger.Fatalf("初始化采集器失败: %v", err)
	}
	collectService := service.NewCollectService(
		collector,
		importService,
		&cfg.Collector,
		recorder,
		logrusLogger,
	)

	// 8. 启动时导入配置的CSV（可选）
	importCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	if err := importService.ImportFiles(importCtx, cfg.Import); err != nil {
		logrusLogger.WithError(err).Error("启动导入CSV失败，继续使用库中已有数据")
	}
	cancel()

	// 9. 配置Gin运行模式（从配置读取：debug/release）
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	if len(cfg.CORS.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORS.AllowOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	// 注册ppof 方便调试和监测性能问题
	pprof.Register(r)
	r.GET("/metrics", gin.WrapH(recorder.Handler()))
	logrusLogger.Infof("Gin运行模式: %s", cfg.Server.Mode)

	// 10. 注册API路由
	statsHandler := api.NewStatsHandler(statsService, logrusLogger)
	r.GET("/api/batting/options", statsHandler.BattingOptions)
	r.GET("/api/batting", statsHandler.Batting)
	r.GET("/api/batting/dismissals", statsHandler.Dismissals)
	r.GET("/api/bowling/options", statsHandler.BowlingOptions)
	r.GET("/api/bowling", statsHandler.Bowling)
	r.GET("/api/overview", statsHandler.Overview)

	importHandler := api.NewImportHandler(importService, logrusLogger)
	r.POST("/api/import/batting", importHandler.ImportBatting)
	r.POST("/api/import/bowling", importHandler.ImportBowling)

	syncHandler := api.NewSyncHandler(collectService, logrusLogger)
	r.POST("/sync/collect", syncHandler.CollectHandler)

	// 11. 启动服务（从配置读取端口）
	port := cfg.Server.Port
	logrusLogger.Infof("服务启动成功，端口：%d", port)
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		logrusLogger.Fatalf("启动服务失败: %v", err)
	}
}
