package main

import (
	"fmt"
	"net/http"

	"github.com/staffly-hq/attendance-backend-go/internal/config"
	appHTTP "github.com/staffly-hq/attendance-backend-go/internal/handler/http"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/database"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffly-hq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffly-hq/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/staffly-hq/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/staffly-hq/attendance-backend-go/internal/service/employee"
	salaryService "github.com/staffly-hq/attendance-backend-go/internal/service/salary"
	scheduleService "github.com/staffly-hq/attendance-backend-go/internal/service/schedule"
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

	loc := cfg.Location()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(employeeRepo, loc)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, loc)
	salarySvc := salaryService.NewSalaryService(salaryRepo, attendanceRepo, employeeRepo, loc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo, employeeRepo, loc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, scheduleSvc, loc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		attendanceHandler,
		employeeHandler,
		salaryHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
