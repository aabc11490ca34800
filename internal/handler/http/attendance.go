package http

import (
	"bytes"
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/toast"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	feedback
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, notifier toast.Notifier) AttendanceHandler {
	return &attendanceHandlerImpl{
		feedback:          feedback{toast: notifier},
		attendanceService: attendanceService,
	}
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := table.QueryFromValues(r.URL.Query(), attendance.TableSchema)

	page, err := h.attendanceService.List(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.List(w, page, "No attendance records found")
}

func (h *attendanceHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.badRequest(w, "Attendance ID is required")
		return
	}

	var req attendance.EditRequest
	if err := decodeBody(r, &req); err != nil {
		h.badRequest(w, "Invalid request body")
		return
	}

	rec, err := h.attendanceService.Edit(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.done("Attendance updated successfully")
	response.SuccessWithMessage(w, "Attendance updated successfully", rec)
}

func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	h.writeExport(w, r, "attendance", func(buf *bytes.Buffer, format string) error {
		return h.attendanceService.Export(r.Context(), buf, format)
	})
}
