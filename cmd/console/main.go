package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/config"
	"github.com/cmlabs-hris/hris-console-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/hris-console-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/backend"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/toast"
	"github.com/cmlabs-hris/hris-console-go/internal/repository/memory"
	"github.com/cmlabs-hris/hris-console-go/internal/repository/rest"
	attendanceService "github.com/cmlabs-hris/hris-console-go/internal/service/attendance"
	designationService "github.com/cmlabs-hris/hris-console-go/internal/service/designation"
	employeeService "github.com/cmlabs-hris/hris-console-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-console-go/internal/service/leave"
	payrollService "github.com/cmlabs-hris/hris-console-go/internal/service/payroll"
	"github.com/go-chi/httplog/v3"
	"github.com/jonboulle/clockwork"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		log.Fatal(err)
	}
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-console"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	client, err := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	if err != nil {
		log.Fatal("Failed to initialize backend client: ", err)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	clock := clockwork.NewRealClock()
	hub := sse.NewHub(16)
	notifier := toast.NewNotifier(clock, cfg.Console.ToastDismissAfter, hub)
	pageSize := cfg.Console.TablePageSize
	lateAfter := cfg.Console.AttendanceLateAfter

	// Upstream-backed screens
	designationRepo := rest.NewDesignationRepository(client)
	employeeRepo := rest.NewEmployeeRepository(client)
	payrollRepo := rest.NewPayrollRepository(client)

	// Screens without an upstream endpoint run on seeded in-memory stores
	disabledRepo := memory.NewDisabledRepository(fixtures.DisabledEmployees())
	attendanceRepo := memory.NewAttendanceRepository(fixtures.AttendanceRecords(lateAfter))
	leaveRequestRepo := memory.NewLeaveRequestRepository(fixtures.LeaveRequests())
	leaveCreditRepo := memory.NewLeaveCreditRepository(fixtures.LeaveCredits())

	designationSvc := designationService.NewDesignationService(designationRepo, pageSize)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, pageSize)
	importSvc := employeeService.NewImportService(employeeRepo, employeeSvc, fileStorage, clock)
	disabledSvc := employeeService.NewDisabledService(disabledRepo, pageSize)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, pageSize, lateAfter)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, pageSize, clock)
	creditSvc := leaveService.NewCreditService(leaveCreditRepo, pageSize)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, pageSize)

	scheduler := cron.NewScheduler(clock, logger)
	cron.NewImportJobs(importSvc, cfg.Storage.ImportStageTTL).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.Handlers{
		Designation: appHTTP.NewDesignationHandler(designationSvc, notifier),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc, importSvc, disabledSvc, notifier),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc, notifier),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc, creditSvc, notifier),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc, notifier),
		Toast:       appHTTP.NewToastHandler(notifier, hub),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		MetricsEnabled: cfg.App.MetricsEnabled,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server running", "addr", server.Addr, "backend", cfg.Backend.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
