package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/toast"
	"github.com/go-chi/chi/v5"
)

type DesignationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CurrentDraft(w http.ResponseWriter, r *http.Request)
	NewDraft(w http.ResponseWriter, r *http.Request)
	EditDraft(w http.ResponseWriter, r *http.Request)
	UpdateDraft(w http.ResponseWriter, r *http.Request)
	CancelDraft(w http.ResponseWriter, r *http.Request)
	SubmitDraft(w http.ResponseWriter, r *http.Request)
}

type designationHandlerImpl struct {
	*draftHandler[designation.Draft]
	designationService designation.DesignationService
}

func NewDesignationHandler(designationService designation.DesignationService, notifier toast.Notifier) DesignationHandler {
	fb := feedback{toast: notifier}
	return &designationHandlerImpl{
		draftHandler:       &draftHandler[designation.Draft]{feedback: fb, drafts: designationService, noun: "Designation"},
		designationService: designationService,
	}
}

func (h *designationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := table.QueryFromValues(r.URL.Query(), designation.TableSchema)

	page, err := h.designationService.List(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.List(w, page, "No designations found")
}

func (h *designationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.badRequest(w, "Designation ID is required")
		return
	}

	if err := h.designationService.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	h.done("Designation deleted successfully")
	response.SuccessWithMessage(w, "Designation deleted successfully", nil)
}
