package http

import (
	"net/http"

	"github.com/MKhiriev/system-sage/internal/utils"
)

func (h *Handler) getInstalledSoftware(w http.ResponseWriter, r *http.Request) {
	software, err := h.services.SystemInventoryService.GetInstalledSoftware(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getInstalledSoftware", "error scanning installed software", err)
		return
	}

	utils.WriteJSON(w, software, http.StatusOK)
}

func (h *Handler) getHostSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.SystemInventoryService.GetHostSummary(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getHostSummary", "error collecting host summary", err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) getFirmwareSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.services.SystemInventoryService.GetFirmwareSnapshot(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getFirmwareSnapshot", "error collecting firmware snapshot", err)
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}
