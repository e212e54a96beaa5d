package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/attendly/attendance-backend-go/internal/config"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/cron"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/pkg/slack"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendly/attendance-backend-go/internal/service/auth"
	payrollService "github.com/attendly/attendance-backend-go/internal/service/payroll"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
	userService "github.com/attendly/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	notifier := slack.NewNotifier(cfg.Slack.WebhookURL)

	retention, err := time.ParseDuration(cfg.JWT.RefreshExpiration)
	if err != nil {
		retention = 168 * time.Hour
	}
	scheduler := cron.NewScheduler()
	cron.RegisterTokenCleanup(scheduler, jwtService, retention)
	scheduler.Start()
	defer scheduler.Stop()

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	userSvc := userService.NewUserService(db, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, userRepo, notifier, logger)
	reportSvc := reportService.NewReportService(db, attendanceRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(db, attendanceRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		userHandler,
		attendanceHandler,
		reportHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
