package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"managedb/cmd/app"
	"managedb/internal/config"
	handlers "managedb/internal/handler"
	"managedb/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Не удалось инициализировать логгер: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg, logger)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/admin_login", handler.Login).Methods(http.MethodPost)

	router.HandleFunc("/admin", handler.GetAdmin).Methods(http.MethodGet)
	router.HandleFunc("/admin", handler.CreateAdmin).Methods(http.MethodPost)
	router.HandleFunc("/admin", handler.UpdateAdmin).Methods(http.MethodPut)
	router.HandleFunc("/admin", handler.DeleteAdmin).Methods(http.MethodDelete)

	router.HandleFunc("/user", handler.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/user", handler.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/user", handler.UpdateUser).Methods(http.MethodPut)
	router.HandleFunc("/user", handler.DeleteUser).Methods(http.MethodDelete)
	router.HandleFunc("/user_search", handler.SearchUser).Methods(http.MethodGet)

	router.HandleFunc("/post", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/post", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/post", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/post", handler.DeletePost).Methods(http.MethodDelete)

	router.HandleFunc("/transfer", handler.ExportHandler).Methods(http.MethodGet)
	router.HandleFunc("/transfer", handler.ImportHandler).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("сервер запущен",
		zap.String("addr", addr),
		zap.String("database", cfg.DB.DbNAME),
	)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Fatal("ошибка запуска сервера", zap.Error(err))
	}
}
