// Package handler exposes document verification over HTTP.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"attestor/internal/audit"
	"attestor/internal/chain"
	"attestor/internal/document"
	"attestor/internal/verify"
	dErrors "attestor/pkg/domain-errors"
	"attestor/pkg/platform/httputil"
)

// maxDocumentBytes caps the request body; wrapped documents are small.
const maxDocumentBytes = 1 << 20

// DocumentVerifier runs issuer identity verification for a parsed document.
type DocumentVerifier interface {
	Verify(ctx context.Context, doc document.Document) verify.Fragment
}

// IssuanceChecker reads issuance state from a referenced contract.
type IssuanceChecker interface {
	IsIssued(ctx context.Context, ref chain.ContractRef, hash string) (bool, error)
}

// AuditPublisher records verification runs and serves them back to operators.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
	FindByRunID(ctx context.Context, runID string) (audit.Event, error)
}

// Handler handles HTTP requests for verification operations.
type Handler struct {
	verifier DocumentVerifier
	checker  IssuanceChecker
	caller   chain.Caller
	auditor  AuditPublisher
	logger   *slog.Logger
}

// New creates a verification handler.
func New(verifier DocumentVerifier, checker IssuanceChecker, caller chain.Caller, auditor AuditPublisher, logger *slog.Logger) *Handler {
	return &Handler{
		verifier: verifier,
		checker:  checker,
		caller:   caller,
		auditor:  auditor,
		logger:   logger,
	}
}

// Register mounts the public verification routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/verify", h.HandleVerify)
	r.Post("/issuance", h.HandleIssuance)
}

// RegisterAudit mounts the operator audit route; callers wrap it in auth.
func (h *Handler) RegisterAudit(r chi.Router) {
	r.Get("/audit/{runID}", h.HandleAuditLookup)
}

// VerifyResponse is the response body for document verification.
type VerifyResponse struct {
	RunID    string          `json:"runId"`
	Fragment verify.Fragment `json:"fragment"`
}

// HandleVerify handles POST /verify. The body is the raw wrapped document.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "read request body"))
		return
	}

	doc, err := document.Parse(body)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, err.Error()))
		return
	}

	runID := uuid.New()
	fragment := h.verifier.Verify(ctx, doc)

	h.emitAudit(ctx, runID, doc, fragment, time.Since(start))

	h.logger.InfoContext(ctx, "verification run completed",
		"run_id", runID,
		"status", fragment.Status,
	)
	httputil.WriteJSON(w, http.StatusOK, VerifyResponse{
		RunID:    runID.String(),
		Fragment: fragment,
	})
}

func (h *Handler) emitAudit(ctx context.Context, runID uuid.UUID, doc document.Document, fragment verify.Fragment, elapsed time.Duration) {
	event := audit.Event{
		RunID:      runID,
		DocumentID: merkleRoot(doc),
		Action:     audit.ActionVerify,
		Status:     string(fragment.Status),
		DurationMS: elapsed.Milliseconds(),
	}
	if fragment.Reason != nil {
		event.ReasonCode = int(fragment.Reason.Code)
		event.Reason = fragment.Reason.Message
	}
	if err := h.auditor.Emit(ctx, event); err != nil {
		// The verification result still goes out; losing one audit row is
		// an operational problem, not the client's.
		h.logger.ErrorContext(ctx, "audit emit failed", "run_id", runID, "error", err)
	}
}

func merkleRoot(doc document.Document) string {
	switch d := doc.(type) {
	case *document.V2Document:
		return d.MerkleRoot
	case *document.V3Document:
		return d.MerkleRoot
	}
	return ""
}

// IssuanceRequest is the request body for issuance checks.
type IssuanceRequest struct {
	ContractAddress string `json:"contractAddress"`
	Variant         string `json:"variant"`
	DocumentHash    string `json:"documentHash"`
}

// Validate checks required fields before any chain read.
func (r *IssuanceRequest) Validate() error {
	if r.ContractAddress == "" || r.DocumentHash == "" {
		return dErrors.New(dErrors.CodeBadRequest, "contractAddress and documentHash are required")
	}
	return nil
}

// IssuanceResponse is the response body for issuance checks.
type IssuanceResponse struct {
	Issued bool `json:"issued"`
}

// HandleIssuance handles POST /issuance.
func (h *Handler) HandleIssuance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req IssuanceRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "malformed request body"))
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	variant, err := chain.ParseVariant(req.Variant)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, err.Error()))
		return
	}

	ref := chain.ContractRef{Variant: variant, Address: req.ContractAddress, Caller: h.caller}
	issued, err := h.checker.IsIssued(ctx, ref, req.DocumentHash)
	if err != nil {
		h.logger.ErrorContext(ctx, "issuance check failed",
			"contract", req.ContractAddress,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "issuance check failed"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, IssuanceResponse{Issued: issued})
}

// HandleAuditLookup handles GET /audit/{runID}.
func (h *Handler) HandleAuditLookup(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if _, err := uuid.Parse(runID); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "runID must be a UUID"))
		return
	}

	event, err := h.auditor.FindByRunID(r.Context(), runID)
	if err != nil {
		if errors.Is(err, audit.ErrNotFound) {
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "audit lookup failed"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, event)
}
