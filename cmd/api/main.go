package main

import (
	"fmt"
	"net/http"

	"github.com/staffloop/hr-portal-go/internal/config"
	appHTTP "github.com/staffloop/hr-portal-go/internal/handler/http"
	"github.com/staffloop/hr-portal-go/internal/pkg/database"
	"github.com/staffloop/hr-portal-go/internal/pkg/jwt"
	"github.com/staffloop/hr-portal-go/internal/repository/postgresql"
	attendanceService "github.com/staffloop/hr-portal-go/internal/service/attendance"
	authService "github.com/staffloop/hr-portal-go/internal/service/auth"
	dashboardService "github.com/staffloop/hr-portal-go/internal/service/dashboard"
	employeeService "github.com/staffloop/hr-portal-go/internal/service/employee"
	leaveService "github.com/staffloop/hr-portal-go/internal/service/leave"
	reportService "github.com/staffloop/hr-portal-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		reportHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
