package api

import (
	"log/slog"
	"net/http"

	entitlementApp "github.com/felixgeelhaar/pawsit/internal/entitlement/application"
)

// EntitlementHandler handles entitlement checks.
type EntitlementHandler struct {
	service *entitlementApp.Service
	logger  *slog.Logger
}

// NewEntitlementHandler creates a new entitlement handler.
func NewEntitlementHandler(service *entitlementApp.Service, logger *slog.Logger) *EntitlementHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntitlementHandler{service: service, logger: logger}
}

// GetEntitlement handles GET /api/v1/users/{userID}/entitlement
//
// The answer is always 200; lookup failures report no access.
func (h *EntitlementHandler) GetEntitlement(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDPath(w, r, "userID")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Check(r.Context(), userID))
}
