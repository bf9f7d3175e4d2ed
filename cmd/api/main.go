package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/nomina-hq/nomina-backend-go/internal/config"
	"github.com/nomina-hq/nomina-backend-go/internal/fixtures"
	appHTTP "github.com/nomina-hq/nomina-backend-go/internal/handler/http"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/database"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/jwt"
	"github.com/nomina-hq/nomina-backend-go/internal/repository/postgresql"
	authService "github.com/nomina-hq/nomina-backend-go/internal/service/auth"
	employeeService "github.com/nomina-hq/nomina-backend-go/internal/service/employee"
	payrollService "github.com/nomina-hq/nomina-backend-go/internal/service/payroll"
	reportService "github.com/nomina-hq/nomina-backend-go/internal/service/report"
	settingsService "github.com/nomina-hq/nomina-backend-go/internal/service/settings"
	workEventService "github.com/nomina-hq/nomina-backend-go/internal/service/workevent"
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
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workEventRepo := postgresql.NewWorkEventRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	workEventSvc := workEventService.NewWorkEventService(workEventRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, workEventRepo, settingsRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	reportSvc := reportService.NewReportService(payrollRepo, employeeRepo, settingsRepo)

	ctx := context.Background()
	if err := fixtures.SeedDefaults(ctx, settingsRepo, userRepo); err != nil {
		log.Fatal("Error seeding defaults: ", err)
	}
	if cfg.App.SeedDemo {
		if err := fixtures.SeedDemoData(ctx, employeeRepo); err != nil {
			log.Fatal("Error seeding demo data: ", err)
		}
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtSvc,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewWorkEventHandler(workEventSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewSettingsHandler(settingsSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
