package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/toast"
)

type ToastHandler interface {
	Current(w http.ResponseWriter, r *http.Request)
	Dismiss(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type toastHandlerImpl struct {
	notifier  toast.Notifier
	hub       *sse.Hub
	keepalive time.Duration
}

func NewToastHandler(notifier toast.Notifier, hub *sse.Hub) ToastHandler {
	return &toastHandlerImpl{notifier: notifier, hub: hub, keepalive: 30 * time.Second}
}

// Current returns the visible toast, or null when none is showing.
func (h *toastHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	msg, visible := h.notifier.Current()
	if !visible {
		response.Success(w, nil)
		return
	}
	response.Success(w, msg)
}

func (h *toastHandlerImpl) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.notifier.Dismiss()
	response.SuccessWithMessage(w, "Toast dismissed", nil)
}

// Stream pushes toast.show and toast.dismiss events over SSE. A toast already
// visible is sent first.
func (h *toastHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(toast.Topic)
	defer cleanup()

	if msg, visible := h.notifier.Current(); visible {
		_, _ = sse.Event{Name: toast.EventShow, Data: msg}.WriteTo(w)
	}
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if _, err := event.WriteTo(w); err != nil {
				return
			}
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, ": ping %d\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
