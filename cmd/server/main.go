package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	_ "usersvc/docs" // swagger docs

	"usersvc/internal/config"
	"usersvc/internal/db"
	"usersvc/internal/handler"
	"usersvc/internal/model"
	"usersvc/internal/repository"
	"usersvc/internal/router"
	"usersvc/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title User Service API
// @version 1.0
// @description Minimal RESTful CRUD service for the User resource.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBLogQueries)
	if err != nil {
		logrus.WithError(err).Fatal("database init")
	}

	if cfg.DBAutoSync {
		if err := gormDB.AutoMigrate(&model.User{}); err != nil {
			logrus.WithError(err).Fatal("auto-migrate")
		}
	}

	userRepo := repository.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(cfg.ServiceName)

	e := echo.New()
	router.Register(e, cfg, userHandler, healthHandler)

	go func() {
		addr := ":" + cfg.ServerPort
		logrus.WithField("addr", addr).Infof("%s listening", cfg.ServiceName)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("server shutdown")
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.WithError(err).Error("close database")
		}
	}
}
