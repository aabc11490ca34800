package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// Handlers groups the per-screen handlers mounted by NewRouter.
type Handlers struct {
	Designation DesignationHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Payroll     PayrollHandler
	Toast       ToastHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	MetricsEnabled bool
}

func NewRouter(h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	r.Route("/api/v1/console", func(r chi.Router) {

		r.Route("/designations", func(r chi.Router) {
			r.Get("/", h.Designation.List)
			r.Delete("/{id}", h.Designation.Delete)
			r.Post("/{id}/form", h.Designation.EditDraft)
			r.Route("/form", func(r chi.Router) {
				r.Get("/", h.Designation.CurrentDraft)
				r.Post("/", h.Designation.NewDraft)
				r.Put("/", h.Designation.UpdateDraft)
				r.Delete("/", h.Designation.CancelDraft)
				r.Post("/submit", h.Designation.SubmitDraft)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Get("/export", h.Employee.Export)
			r.Put("/{id}/disable", h.Employee.Disable)
			r.Post("/{id}/form", h.Employee.EditDraft)
			r.Route("/form", func(r chi.Router) {
				r.Get("/", h.Employee.CurrentDraft)
				r.Post("/", h.Employee.NewDraft)
				r.Put("/", h.Employee.UpdateDraft)
				r.Delete("/", h.Employee.CancelDraft)
				r.Post("/submit", h.Employee.SubmitDraft)
			})
			r.Route("/import", func(r chi.Router) {
				r.Post("/", h.Employee.PreviewImport)
				r.Post("/{token}/confirm", h.Employee.ConfirmImport)
				r.Delete("/{token}", h.Employee.DiscardImport)
			})
		})

		r.Route("/disabled-employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListDisabled)
			r.Put("/{id}/enable", h.Employee.Enable)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.List)
			r.Get("/export", h.Attendance.Export)
			r.Put("/{id}", h.Attendance.Edit)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", h.Leave.List)
			r.Put("/{id}/approve", h.Leave.Approve)
			r.Put("/{id}/reject", h.Leave.Reject)
			r.Route("/form", func(r chi.Router) {
				r.Get("/", h.Leave.CurrentDraft)
				r.Post("/", h.Leave.NewDraft)
				r.Put("/", h.Leave.UpdateDraft)
				r.Delete("/", h.Leave.CancelDraft)
				r.Post("/submit", h.Leave.SubmitDraft)
			})
		})

		r.Route("/leave-credits", func(r chi.Router) {
			r.Get("/", h.Leave.ListCredits)
			r.Put("/{employeeID}", h.Leave.UpdateCredit)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/", h.Payroll.List)
			r.Get("/summary", h.Payroll.Summary)
			r.Get("/export", h.Payroll.Export)
			r.Delete("/{id}", h.Payroll.Delete)
			r.Post("/{id}/form", h.Payroll.EditDraft)
			r.Route("/form", func(r chi.Router) {
				r.Get("/", h.Payroll.CurrentDraft)
				r.Post("/", h.Payroll.NewDraft)
				r.Put("/", h.Payroll.UpdateDraft)
				r.Delete("/", h.Payroll.CancelDraft)
				r.Post("/submit", h.Payroll.SubmitDraft)
			})
		})

		r.Route("/toast", func(r chi.Router) {
			r.Get("/", h.Toast.Current)
			r.Delete("/", h.Toast.Dismiss)
			r.Get("/stream", h.Toast.Stream)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	return r
}
