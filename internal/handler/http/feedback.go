package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/toast"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// feedback turns handler outcomes into toasts. Every failure is logged once here.
type feedback struct {
	toast toast.Notifier
}

func (f feedback) fail(w http.ResponseWriter, r *http.Request, err error) {
	message := response.HandleError(w, err)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		slog.WarnContext(r.Context(), "Request rejected", "path", r.URL.Path, "error", err)
	} else {
		slog.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "error", err)
	}
	f.toast.Error(message)
}

func (f feedback) badRequest(w http.ResponseWriter, message string) {
	response.BadRequest(w, message, nil)
	f.toast.Error(message)
}

func (f feedback) done(message string) {
	f.toast.Success(message)
}

func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// exportFormat reads ?format=, defaulting to xlsx.
func exportFormat(r *http.Request) string {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		return spreadsheet.FormatXLSX
	}
	return format
}

// writeExport renders into memory first so a failure still yields a JSON error.
func (f feedback) writeExport(w http.ResponseWriter, r *http.Request, name string, render func(buf *bytes.Buffer, format string) error) {
	format := exportFormat(r)
	var buf bytes.Buffer
	if err := render(&buf, format); err != nil {
		f.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", spreadsheet.ContentType(format))
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+"."+format+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// draftService is the form half of a screen service with create and edit.
type draftService[T form.Draft] interface {
	NewDraft() form.Snapshot[T]
	EditDraft(ctx context.Context, id string) (form.Snapshot[T], error)
	UpdateDraft(draft T) (form.Snapshot[T], error)
	CancelDraft()
	CurrentDraft() form.Snapshot[T]
	SubmitDraft(ctx context.Context) (T, error)
}

// draftHandler serves the create/edit form of one screen.
type draftHandler[T form.Draft] struct {
	feedback
	drafts draftService[T]
	noun   string
}

func (h *draftHandler[T]) CurrentDraft(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.drafts.CurrentDraft())
}

func (h *draftHandler[T]) NewDraft(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.drafts.NewDraft())
}

func (h *draftHandler[T]) EditDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.badRequest(w, h.noun+" ID is required")
		return
	}

	snap, err := h.drafts.EditDraft(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, snap)
}

func (h *draftHandler[T]) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var draft T
	if err := decodeBody(r, &draft); err != nil {
		h.badRequest(w, "Invalid request body")
		return
	}

	snap, err := h.drafts.UpdateDraft(draft)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, snap)
}

func (h *draftHandler[T]) CancelDraft(w http.ResponseWriter, r *http.Request) {
	h.drafts.CancelDraft()
	response.Success(w, h.drafts.CurrentDraft())
}

func (h *draftHandler[T]) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	editing := h.drafts.CurrentDraft().Mode == form.ModeEdit

	saved, err := h.drafts.SubmitDraft(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if editing {
		message := h.noun + " updated successfully"
		h.done(message)
		response.SuccessWithMessage(w, message, saved)
		return
	}
	message := h.noun + " created successfully"
	h.done(message)
	response.Created(w, message, saved)
}
