package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/system-sage/internal/utils"
)

func (h *Handler) auditList(funcName string, list func(ctx context.Context) ([]string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			writeError(w, r, funcName, "error auditing developer environment", err)
			return
		}

		utils.WriteJSON(w, items, http.StatusOK)
	}
}

func (h *Handler) getDetectedComponents(w http.ResponseWriter, r *http.Request) {
	h.auditList("*Handler.getDetectedComponents", h.services.DevEnvAuditService.GetDetectedComponents)(w, r)
}

func (h *Handler) getEnvironmentVariables(w http.ResponseWriter, r *http.Request) {
	h.auditList("*Handler.getEnvironmentVariables", h.services.DevEnvAuditService.GetEnvironmentVariables)(w, r)
}

func (h *Handler) getIdentifiedIssues(w http.ResponseWriter, r *http.Request) {
	h.auditList("*Handler.getIdentifiedIssues", h.services.DevEnvAuditService.GetIdentifiedIssues)(w, r)
}

func (h *Handler) getAuditReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.DevEnvAuditService.GetReport(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getAuditReport", "error auditing developer environment", err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
