package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/buildcrew/sitepulse-backend-go/internal/config"
	appHTTP "github.com/buildcrew/sitepulse-backend-go/internal/handler/http"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/database"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/jwt"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/sse"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/storage"
	"github.com/buildcrew/sitepulse-backend-go/internal/repository/postgresql"
	attendanceService "github.com/buildcrew/sitepulse-backend-go/internal/service/attendance"
	serviceAuth "github.com/buildcrew/sitepulse-backend-go/internal/service/auth"
	dprService "github.com/buildcrew/sitepulse-backend-go/internal/service/dpr"
	faceService "github.com/buildcrew/sitepulse-backend-go/internal/service/face"
	"github.com/buildcrew/sitepulse-backend-go/internal/service/file"
	siteService "github.com/buildcrew/sitepulse-backend-go/internal/service/site"
	taskService "github.com/buildcrew/sitepulse-backend-go/internal/service/task"
	workerService "github.com/buildcrew/sitepulse-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	faceRepo := postgresql.NewFaceRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	dprRepo := postgresql.NewDPRRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	hub := sse.NewHub()

	fileSvc := file.NewFileService(fileStorage)
	authSvc := serviceAuth.NewAuthService(db, userRepo, jwtService, jwtRepo)
	faceSvc := faceService.NewFaceService(faceRepo, hub)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, hub)
	workerSvc := workerService.NewWorkerService(workerRepo, fileSvc)
	taskSvc := taskService.NewTaskService(taskRepo)
	siteSvc := siteService.NewSiteService(siteRepo)
	dprSvc := dprService.NewDPRService(dprRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Face:       appHTTP.NewFaceHandler(faceSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Site:       appHTTP.NewSiteHandler(siteSvc, attendanceSvc),
		DPR:        appHTTP.NewDPRHandler(dprSvc),
		Events:     appHTTP.NewEventsHandler(hub),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.Storage.BasePath)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
