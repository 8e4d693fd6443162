package main

import (
	"fmt"
	"net/http"

	"github.com/newera-construction/siteledger-backend-go/internal/config"
	appHTTP "github.com/newera-construction/siteledger-backend-go/internal/handler/http"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/database"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/jwt"
	"github.com/newera-construction/siteledger-backend-go/internal/repository/postgresql"
	attendanceService "github.com/newera-construction/siteledger-backend-go/internal/service/attendance"
	authService "github.com/newera-construction/siteledger-backend-go/internal/service/auth"
	machineryService "github.com/newera-construction/siteledger-backend-go/internal/service/machinery"
	materialService "github.com/newera-construction/siteledger-backend-go/internal/service/material"
	projectService "github.com/newera-construction/siteledger-backend-go/internal/service/project"
	workerService "github.com/newera-construction/siteledger-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	materialRepo := postgresql.NewMaterialRepository(db)
	machineryRepo := postgresql.NewMachineryRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(cfg.Supervisor, jwtSvc)
	workerSvc := workerService.NewWorkerService(workerRepo, advanceRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo, assignmentRepo, workerRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, workerRepo, advanceRepo)
	materialSvc := materialService.NewMaterialService(materialRepo, projectRepo)
	machinerySvc := machineryService.NewMachineryService(machineryRepo, projectRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	materialHandler := appHTTP.NewMaterialHandler(materialSvc)
	machineryHandler := appHTTP.NewMachineryHandler(machinerySvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		attendanceHandler,
		workerHandler,
		projectHandler,
		materialHandler,
		machineryHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
