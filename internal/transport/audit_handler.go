// Package transport exposes the read-only audit HTTP API.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
	"github.com/StudioLIQ/tickasting-sub000/internal/service"
)

// SnapshotProvider is the slice of the snapshot builder the audit API
// consumes.
type SnapshotProvider interface {
	Generate(ctx context.Context, saleID string) (*model.AllocationSnapshot, error)
	Proof(ctx context.Context, saleID, txID string) (*service.ProofResponse, error)
}

// AuditHandler serves the published allocation documents: the snapshot and
// per-winner Merkle proofs. All endpoints are read-only.
type AuditHandler struct {
	snapshots SnapshotProvider
	logger    *zap.Logger
}

// NewAuditHandler returns an AuditHandler instance.
func NewAuditHandler(snapshots SnapshotProvider, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{snapshots: snapshots, logger: logger}
}

// Register mounts the audit routes on a mux.
func (h *AuditHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/sales/{id}/snapshot", h.handleSnapshot)
	mux.HandleFunc("GET /v1/sales/{id}/proof/{txid}", h.handleProof)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

func (h *AuditHandler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	saleID := r.PathValue("id")

	snapshot, err := h.snapshots.Generate(r.Context(), saleID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
}

func (h *AuditHandler) handleProof(w http.ResponseWriter, r *http.Request) {
	saleID := r.PathValue("id")
	txID := r.PathValue("txid")

	proof, err := h.snapshots.Proof(r.Context(), saleID, txID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, proof)
}

func (h *AuditHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuditHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": notFound.Error()})
		return
	}

	h.logger.Error("audit request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err))
	h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func (h *AuditHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("write response failed", zap.Error(err))
	}
}
