// Package handler exposes the compliance dashboard and event approval over
// HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	id "aceaudit/pkg/domain"
	dErrors "aceaudit/pkg/domain-errors"
	"aceaudit/pkg/platform/httputil"
	"aceaudit/pkg/platform/middleware/requesttime"
	"aceaudit/pkg/requestcontext"

	"aceaudit/internal/compliance/service"
)

// Service defines the compliance operations the handler exposes.
type Service interface {
	Dashboard(ctx context.Context, providerID id.ProviderID) (*service.DashboardResponse, error)
	DecideEvent(ctx context.Context, eventID id.EventID, action service.DecisionAction) (*service.ApprovalResponse, error)
}

// Handler routes compliance endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a compliance Handler.
func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: svc}
}

// Register mounts the compliance routes on the chi router. The request clock
// is pinned once per request so every derivation in a response shares one
// instant.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(propagateRequestID)
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(requesttime.Middleware)

	router.Get("/api/providers/{providerID}/dashboard", h.handleDashboard)
	router.Post("/api/events/{eventID}/approval", h.handleApproval)

	r.Mount("/", router)
}

// propagateRequestID copies chi's correlation ID into the request context
// accessor the service and audit layers read.
func propagateRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			ctx = requestcontext.WithRequestID(ctx, reqID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	providerID, err := id.ParseProviderID(chi.URLParam(r, "providerID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid provider id"))
		return
	}

	resp, err := h.service.Dashboard(ctx, providerID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInternal) {
			h.logger.ErrorContext(ctx, "dashboard evaluation failed",
				"provider_id", providerID, "error", err.Error())
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// approvalRequest is the decision body: {"action": "approve"|"reject"}.
// An optional actorId attributes the decision in the audit trail.
type approvalRequest struct {
	Action  service.DecisionAction `json:"action"`
	ActorID string                 `json:"actorId,omitempty"`
}

func (h *Handler) handleApproval(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := id.ParseEventID(chi.URLParam(r, "eventID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid event id"))
		return
	}

	var req approvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.ActorID != "" {
		actor, err := id.ParseActorID(req.ActorID)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid actor id"))
			return
		}
		ctx = requestcontext.WithActorID(ctx, actor)
	}

	resp, err := h.service.DecideEvent(ctx, eventID, req.Action)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInternal) {
			h.logger.ErrorContext(ctx, "approval decision failed",
				"event_id", eventID, "error", err.Error())
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}
