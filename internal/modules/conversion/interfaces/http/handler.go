package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/application"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/domain"
	"github.com/saransh1220/rawconvert/pkg/logger"
)

// Runner runs one round trip
type Runner interface {
	Run(ctx context.Context) (string, error)
}

// ConversionHandler serves invoke requests one at a time; every round trip
// shares the same scratch files.
type ConversionHandler struct {
	mu     sync.Mutex
	runner Runner
}

func NewConversionHandler(runner Runner) *ConversionHandler {
	return &ConversionHandler{runner: runner}
}

type InvokeResponse struct {
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
	Stage  string `json:"stage,omitempty"`
}

// Invoke runs the round trip for a POST /invoke, mirroring a Lambda invocation.
// The request body is ignored.
func (h *ConversionHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get("X-Request-Id")
	if id == "" {
		id = uuid.New().String()
	}
	w.Header().Set("X-Request-Id", id)

	h.mu.Lock()
	out, err := h.runner.Run(application.WithInvocationID(r.Context(), id))
	h.mu.Unlock()

	if err != nil {
		writeJSON(w, id, http.StatusBadGateway, InvokeResponse{Error: err.Error(), Stage: string(domain.StageOf(err))})
		return
	}
	writeJSON(w, id, http.StatusOK, InvokeResponse{Output: out})
}

func writeJSON(w http.ResponseWriter, id string, status int, resp InvokeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error().Err(err).Str("invocation_id", id).Msg("encode invoke response")
	}
}
