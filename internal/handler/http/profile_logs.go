package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/system-sage/internal/app"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/utils"
	"github.com/MKhiriev/system-sage/models"
)

func (h *Handler) getLogs(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.getLogs", "invalid profile id", err)
		return
	}

	logs, err := h.services.BiosProfileService.GetLogs(r.Context(), profileID)
	if err != nil {
		writeError(w, r, "*Handler.getLogs", "error getting profile logs", err)
		return
	}

	utils.WriteJSON(w, logs, http.StatusOK)
}

func (h *Handler) addLog(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	profileID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.addLog", "invalid profile id", err)
		return
	}

	var entry models.ProfileLog
	if err = json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Str("func", "*Handler.addLog").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.BiosProfileService.AddLog(r.Context(), profileID, entry)
	if err != nil {
		writeError(w, r, "*Handler.addLog", "error adding profile log", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
