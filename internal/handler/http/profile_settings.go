package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/system-sage/internal/app"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/utils"
	"github.com/MKhiriev/system-sage/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.getSettings", "invalid profile id", err)
		return
	}

	settings, err := h.services.BiosProfileService.GetSettings(r.Context(), profileID)
	if err != nil {
		writeError(w, r, "*Handler.getSettings", "error getting profile settings", err)
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) addSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	profileID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.addSetting", "invalid profile id", err)
		return
	}

	var setting models.ProfileSetting
	if err = json.NewDecoder(r.Body).Decode(&setting); err != nil {
		log.Err(err).Str("func", "*Handler.addSetting").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.BiosProfileService.AddSetting(r.Context(), profileID, setting)
	if err != nil {
		writeError(w, r, "*Handler.addSetting", "error adding profile setting", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateSettingValue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	profileID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.updateSettingValue", "invalid profile id", err)
		return
	}
	settingID, err := pathID(r, "settingID")
	if err != nil {
		writeError(w, r, "*Handler.updateSettingValue", "invalid setting id", err)
		return
	}

	var update models.SettingValueUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateSettingValue").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.BiosProfileService.UpdateSettingValue(r.Context(), profileID, settingID, update.Value)
	if err != nil {
		writeError(w, r, "*Handler.updateSettingValue", "error updating profile setting", err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSetting(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.deleteSetting", "invalid profile id", err)
		return
	}
	settingID, err := pathID(r, "settingID")
	if err != nil {
		writeError(w, r, "*Handler.deleteSetting", "invalid setting id", err)
		return
	}

	if err = h.services.BiosProfileService.DeleteSetting(r.Context(), profileID, settingID); err != nil {
		writeError(w, r, "*Handler.deleteSetting", "error deleting profile setting", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
