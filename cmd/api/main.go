package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/campushr/letters-backend-go/internal/config"
	appHTTP "github.com/campushr/letters-backend-go/internal/handler/http"
	"github.com/campushr/letters-backend-go/internal/pkg/database"
	"github.com/campushr/letters-backend-go/internal/pkg/email"
	"github.com/campushr/letters-backend-go/internal/pkg/jwt"
	"github.com/campushr/letters-backend-go/internal/pkg/storage"
	"github.com/campushr/letters-backend-go/internal/repository/postgresql"
	authService "github.com/campushr/letters-backend-go/internal/service/auth"
	dashboardService "github.com/campushr/letters-backend-go/internal/service/dashboard"
	letterService "github.com/campushr/letters-backend-go/internal/service/letter"
	templateService "github.com/campushr/letters-backend-go/internal/service/template"
	userService "github.com/campushr/letters-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	letterRepo := postgresql.NewLetterRepository(db)
	templateRepo := postgresql.NewTemplateRepository(db)
	emailLogRepo := postgresql.NewEmailLogRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	authSvc := authService.NewAuthService(userRepo, jwtService)
	letterSvc := letterService.NewLetterService(letterRepo, userRepo, emailLogRepo, emailService, fileStorage)
	userSvc := userService.NewUserService(userRepo, emailLogRepo, emailService, letterSvc, postgresql.NewTxManager(db))
	templateSvc := templateService.NewTemplateService(templateRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		User:      appHTTP.NewUserHandler(userSvc),
		Letter:    appHTTP.NewLetterHandler(letterSvc),
		Template:  appHTTP.NewTemplateHandler(templateSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
