package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/system-sage/internal/app"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/utils"
	"github.com/MKhiriev/system-sage/models"
)

func (h *Handler) getAllProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.BiosProfileService.GetAllProfiles(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getAllProfiles", "error getting bios profiles", err)
		return
	}

	utils.WriteJSON(w, profiles, http.StatusOK)
}

// getProfileByID answers 200 with a JSON null for an unknown id.
func (h *Handler) getProfileByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.getProfileByID", "invalid profile id", err)
		return
	}

	profile, err := h.services.BiosProfileService.GetProfileByID(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getProfileByID", "error getting bios profile", err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var profile models.BiosProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Str("func", "*Handler.createProfile").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	saved, err := h.services.BiosProfileService.SaveProfile(r.Context(), profile)
	if err != nil {
		writeError(w, r, "*Handler.createProfile", "error saving bios profile", err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

// updateProfile stores the body under the path id, whatever id the body
// carries. An unknown id is created.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", "invalid profile id", err)
		return
	}

	var profile models.BiosProfile
	if err = json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	saved, err := h.services.BiosProfileService.UpdateProfile(r.Context(), id, profile)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", "error updating bios profile", err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.deleteProfile", "invalid profile id", err)
		return
	}

	if err = h.services.BiosProfileService.DeleteProfile(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteProfile", "error deleting bios profile", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
