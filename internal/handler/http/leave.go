package http

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/toast"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)

	CurrentDraft(w http.ResponseWriter, r *http.Request)
	NewDraft(w http.ResponseWriter, r *http.Request)
	UpdateDraft(w http.ResponseWriter, r *http.Request)
	CancelDraft(w http.ResponseWriter, r *http.Request)
	SubmitDraft(w http.ResponseWriter, r *http.Request)

	ListCredits(w http.ResponseWriter, r *http.Request)
	UpdateCredit(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	feedback
	leaveService  leave.LeaveService
	creditService leave.CreditService
}

func NewLeaveHandler(leaveService leave.LeaveService, creditService leave.CreditService, notifier toast.Notifier) LeaveHandler {
	return &leaveHandlerImpl{
		feedback:      feedback{toast: notifier},
		leaveService:  leaveService,
		creditService: creditService,
	}
}

// ========== APPLICATIONS ==========

func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := table.QueryFromValues(r.URL.Query(), leave.RequestTableSchema)

	page, err := h.leaveService.List(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.List(w, page, "No leave applications found")
}

func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Approve, "Leave approved")
}

func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Reject, "Leave rejected")
}

type decideFunc func(ctx context.Context, id string, req leave.DecisionRequest) (leave.Request, error)

func (h *leaveHandlerImpl) decide(w http.ResponseWriter, r *http.Request, decide decideFunc, message string) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.badRequest(w, "Leave request ID is required")
		return
	}

	var req leave.DecisionRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			h.badRequest(w, "Invalid request body")
			return
		}
	}

	result, err := decide(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.done(message)
	response.SuccessWithMessage(w, message, result)
}

// ========== APPLICATION FORM ==========

func (h *leaveHandlerImpl) CurrentDraft(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.leaveService.CurrentDraft())
}

func (h *leaveHandlerImpl) NewDraft(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.leaveService.NewDraft())
}

func (h *leaveHandlerImpl) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var draft leave.ApplicationDraft
	if err := decodeBody(r, &draft); err != nil {
		h.badRequest(w, "Invalid request body")
		return
	}

	snap, err := h.leaveService.UpdateDraft(draft)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, snap)
}

func (h *leaveHandlerImpl) CancelDraft(w http.ResponseWriter, r *http.Request) {
	h.leaveService.CancelDraft()
	response.Success(w, h.leaveService.CurrentDraft())
}

func (h *leaveHandlerImpl) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	saved, err := h.leaveService.SubmitDraft(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.done("Leave application submitted")
	response.Created(w, "Leave application submitted", saved)
}

// ========== CREDITS ==========

func (h *leaveHandlerImpl) ListCredits(w http.ResponseWriter, r *http.Request) {
	q := table.QueryFromValues(r.URL.Query(), leave.CreditTableSchema)

	page, err := h.creditService.List(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.List(w, page, "No leave credits found")
}

func (h *leaveHandlerImpl) UpdateCredit(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		h.badRequest(w, "Employee ID is required")
		return
	}

	var req leave.CreditUpdate
	if err := decodeBody(r, &req); err != nil {
		h.badRequest(w, "Invalid request body")
		return
	}

	credit, err := h.creditService.Update(r.Context(), employeeID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.done("Leave credit updated successfully")
	response.SuccessWithMessage(w, "Leave credit updated successfully", credit)
}
