package http

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/toast"
	"github.com/go-chi/chi/v5"
)

// maxImportSize bounds an uploaded workbook.
const maxImportSize = 10 << 20

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Disable(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)

	CurrentDraft(w http.ResponseWriter, r *http.Request)
	NewDraft(w http.ResponseWriter, r *http.Request)
	EditDraft(w http.ResponseWriter, r *http.Request)
	UpdateDraft(w http.ResponseWriter, r *http.Request)
	CancelDraft(w http.ResponseWriter, r *http.Request)
	SubmitDraft(w http.ResponseWriter, r *http.Request)

	PreviewImport(w http.ResponseWriter, r *http.Request)
	ConfirmImport(w http.ResponseWriter, r *http.Request)
	DiscardImport(w http.ResponseWriter, r *http.Request)

	ListDisabled(w http.ResponseWriter, r *http.Request)
	Enable(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	*draftHandler[employee.Draft]
	employeeService employee.EmployeeService
	importService   employee.ImportService
	disabledService employee.DisabledService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, importService employee.ImportService, disabledService employee.DisabledService, notifier toast.Notifier) EmployeeHandler {
	fb := feedback{toast: notifier}
	return &employeeHandlerImpl{
		draftHandler:    &draftHandler[employee.Draft]{feedback: fb, drafts: employeeService, noun: "Employee"},
		employeeService: employeeService,
		importService:   importService,
		disabledService: disabledService,
	}
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := table.QueryFromValues(r.URL.Query(), employee.TableSchema)

	page, err := h.employeeService.List(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.List(w, page, "No employees found")
}

func (h *employeeHandlerImpl) Disable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.badRequest(w, "Employee ID is required")
		return
	}

	if err := h.employeeService.Disable(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	h.done("Employee disabled successfully")
	response.SuccessWithMessage(w, "Employee disabled successfully", nil)
}

func (h *employeeHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	h.writeExport(w, r, "employees", func(buf *bytes.Buffer, format string) error {
		return h.employeeService.Export(r.Context(), buf, format)
	})
}

// PreviewImport reads the multipart field "file" and returns every row with its violations.
func (h *employeeHandlerImpl) PreviewImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		h.badRequest(w, "Failed to parse form data")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.badRequest(w, "Spreadsheet file is required")
			return
		}
		h.badRequest(w, "Invalid file upload")
		return
	}
	defer file.Close()

	preview, err := h.importService.Preview(r.Context(), fileHeader.Filename, file)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if !preview.CanConfirm {
		message := "Import has " + plural(len(preview.Violations), "error") + ", fix the file and upload it again"
		h.toast.Error(message)
		response.SuccessWithMessage(w, message, preview)
		return
	}
	response.SuccessWithMessage(w, plural(len(preview.Rows), "row")+" ready to import", preview)
}

func (h *employeeHandlerImpl) ConfirmImport(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	count, err := h.importService.Confirm(r.Context(), token)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	message := plural(count, "employee") + " imported successfully"
	h.done(message)
	response.SuccessWithMessage(w, message, map[string]int{"imported": count})
}

func (h *employeeHandlerImpl) DiscardImport(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if err := h.importService.Discard(r.Context(), token); err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Import discarded", nil)
}

func (h *employeeHandlerImpl) ListDisabled(w http.ResponseWriter, r *http.Request) {
	q := table.QueryFromValues(r.URL.Query(), employee.TableSchema)

	page, err := h.disabledService.List(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.List(w, page, "No disabled employees")
}

func (h *employeeHandlerImpl) Enable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.badRequest(w, "Employee ID is required")
		return
	}

	e, err := h.disabledService.Enable(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.done("Employee enabled successfully")
	response.SuccessWithMessage(w, "Employee enabled successfully", e)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
