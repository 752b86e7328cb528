package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loan-service/internal/adapter/http"
	"loan-service/internal/adapter/repository/mysql"
	"loan-service/internal/config"
	"loan-service/internal/idempotency"
	"loan-service/internal/infrastructure/cache"
	"loan-service/internal/infrastructure/db"
	appuc "loan-service/internal/usecase/application"
	assessuc "loan-service/internal/usecase/assessment"
	lifecycleuc "loan-service/internal/usecase/lifecycle"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb, cfg.MigrationsDir); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	appRepo := mysql.NewApplicationRepository(gdb)
	assessRepo := mysql.NewAssessmentRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	idemStore := idempotency.NewRedisStore(rdb)

	applications := appuc.NewUsecase(appRepo, assessRepo)
	assessments := assessuc.NewUsecase(appRepo, tx)
	lifecycle := lifecycleuc.NewUsecase(tx, idemStore, time.Duration(cfg.IdempTTLSecs)*time.Second)

	h := httpadp.NewHandler()
	appHandler := httpadp.NewApplicationHandler(applications)
	assessHandler := httpadp.NewAssessmentHandler(assessments)
	lifecycleHandler := httpadp.NewLifecycleHandler(lifecycle)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID(), middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()

	// routes
	e.GET("/health", h.Health)
	e.POST("/loan-applications", appHandler.Create)
	e.GET("/loan-applications", appHandler.List)
	e.GET("/loan-applications/:application_id", appHandler.Get)
	e.POST("/loan-applications/:application_id/credit-assessment", assessHandler.Assess)
	e.POST("/loan-applications/:application_id/approve", lifecycleHandler.Approve)
	e.POST("/loan-applications/:application_id/reject", lifecycleHandler.Reject)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
