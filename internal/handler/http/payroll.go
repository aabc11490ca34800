package http

import (
	"bytes"
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/toast"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)

	CurrentDraft(w http.ResponseWriter, r *http.Request)
	NewDraft(w http.ResponseWriter, r *http.Request)
	EditDraft(w http.ResponseWriter, r *http.Request)
	UpdateDraft(w http.ResponseWriter, r *http.Request)
	CancelDraft(w http.ResponseWriter, r *http.Request)
	SubmitDraft(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	*draftHandler[payroll.Draft]
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService, notifier toast.Notifier) PayrollHandler {
	fb := feedback{toast: notifier}
	return &payrollHandlerImpl{
		draftHandler:   &draftHandler[payroll.Draft]{feedback: fb, drafts: payrollService, noun: "Payroll"},
		payrollService: payrollService,
	}
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := table.QueryFromValues(r.URL.Query(), payroll.TableSchema)

	page, err := h.payrollService.List(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.List(w, page, "No payroll records found")
}

// Summary totals the records matching the filters of the last List call.
func (h *payrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.payrollService.Summary(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, summary)
}

func (h *payrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.badRequest(w, "Payroll ID is required")
		return
	}

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	h.done("Payroll deleted successfully")
	response.SuccessWithMessage(w, "Payroll deleted successfully", nil)
}

func (h *payrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	h.writeExport(w, r, "payroll", func(buf *bytes.Buffer, format string) error {
		return h.payrollService.Export(r.Context(), buf, format)
	})
}
