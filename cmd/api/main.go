package main

import (
	"fmt"
	"net/http"

	"github.com/staffpoint/attendance-backend-go/internal/config"
	appHTTP "github.com/staffpoint/attendance-backend-go/internal/handler/http"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/clock"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/database"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffpoint/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffpoint/attendance-backend-go/internal/service/attendance"
	authService "github.com/staffpoint/attendance-backend-go/internal/service/auth"
	dailylogService "github.com/staffpoint/attendance-backend-go/internal/service/dailylog"
	employeeService "github.com/staffpoint/attendance-backend-go/internal/service/employee"
	leaveService "github.com/staffpoint/attendance-backend-go/internal/service/leave"
	reportService "github.com/staffpoint/attendance-backend-go/internal/service/report"
	statsService "github.com/staffpoint/attendance-backend-go/internal/service/stats"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	clk := clock.System{}

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk)
	dailylogSvc := dailylogService.NewDailyLogService(attendanceRepo, leaveRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)
	statsSvc := statsService.NewStatsService(attendanceRepo, leaveRepo, employeeRepo, clk)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, dailylogSvc, statsSvc, clk)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, statsSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		employeeHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
