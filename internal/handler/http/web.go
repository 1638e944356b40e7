package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/store"
	"github.com/MKhiriev/system-sage/models"
)

const profilesPath = "/bios-profiles"

type profilesPageData struct {
	Profiles []models.BiosProfile
}

type profileFormPageData struct {
	Profile models.BiosProfile
}

type profileDetailPageData struct {
	Profile  models.BiosProfile
	Settings []models.ProfileSetting
	Logs     []models.ProfileLog
}

type devEnvAuditPageData struct {
	Report models.AuditReport
}

type systemInventoryPageData struct {
	Host     *models.HostSummary
	Software []models.SoftwareInfo
	Error    string
}

func (h *Handler) pageProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.BiosProfileService.GetAllProfiles(r.Context())
	if err != nil {
		h.renderError(w, r, "*Handler.pageProfiles", "error getting bios profiles", err)
		return
	}

	h.render(w, r, http.StatusOK, pageProfiles, profilesPageData{Profiles: profiles})
}

func (h *Handler) pageNewProfile(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageProfileForm, profileFormPageData{})
}

func (h *Handler) pageEditProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.loadProfile(w, r, "*Handler.pageEditProfile")
	if !ok {
		return
	}

	h.render(w, r, http.StatusOK, pageProfileForm, profileFormPageData{Profile: *profile})
}

// pageSaveProfile creates a profile from the form, or updates it when the
// form carries an id.
func (h *Handler) pageSaveProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, "*Handler.pageSaveProfile", "error parsing profile form", fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}

	profile := models.BiosProfile{
		Name:        strings.TrimSpace(r.PostForm.Get("name")),
		Description: r.PostForm.Get("description"),
	}

	var err error
	if rawID := strings.TrimSpace(r.PostForm.Get("id")); rawID != "" {
		id, parseErr := strconv.ParseInt(rawID, 10, 64)
		if parseErr != nil || id <= 0 {
			h.renderError(w, r, "*Handler.pageSaveProfile", "invalid profile id", fmt.Errorf("%w: %q", ErrInvalidID, rawID))
			return
		}
		_, err = h.services.BiosProfileService.UpdateProfile(r.Context(), id, profile)
	} else {
		_, err = h.services.BiosProfileService.SaveProfile(r.Context(), profile)
	}
	if err != nil {
		h.renderError(w, r, "*Handler.pageSaveProfile", "error saving bios profile", err)
		return
	}

	http.Redirect(w, r, profilesPath, http.StatusFound)
}

func (h *Handler) pageDeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.renderError(w, r, "*Handler.pageDeleteProfile", "invalid profile id", err)
		return
	}

	if err = h.services.BiosProfileService.DeleteProfile(r.Context(), id); err != nil {
		h.renderError(w, r, "*Handler.pageDeleteProfile", "error deleting bios profile", err)
		return
	}

	http.Redirect(w, r, profilesPath, http.StatusFound)
}

func (h *Handler) pageProfileDetail(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.loadProfile(w, r, "*Handler.pageProfileDetail")
	if !ok {
		return
	}

	ctx := r.Context()
	settings, err := h.services.BiosProfileService.GetSettings(ctx, profile.ID)
	if err != nil {
		h.renderError(w, r, "*Handler.pageProfileDetail", "error getting profile settings", err)
		return
	}
	logs, err := h.services.BiosProfileService.GetLogs(ctx, profile.ID)
	if err != nil {
		h.renderError(w, r, "*Handler.pageProfileDetail", "error getting profile logs", err)
		return
	}

	h.render(w, r, http.StatusOK, pageProfileDetail, profileDetailPageData{
		Profile:  *profile,
		Settings: settings,
		Logs:     logs,
	})
}

func (h *Handler) pageAddSetting(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		h.renderError(w, r, "*Handler.pageAddSetting", "invalid profile id", err)
		return
	}
	if err = r.ParseForm(); err != nil {
		h.renderError(w, r, "*Handler.pageAddSetting", "error parsing setting form", fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}

	setting := models.ProfileSetting{
		Category:  strings.TrimSpace(r.PostForm.Get("category")),
		Name:      strings.TrimSpace(r.PostForm.Get("name")),
		Value:     r.PostForm.Get("value"),
		ValueType: r.PostForm.Get("valueType"),
	}
	if _, err = h.services.BiosProfileService.AddSetting(r.Context(), profileID, setting); err != nil {
		h.renderError(w, r, "*Handler.pageAddSetting", "error adding profile setting", err)
		return
	}

	http.Redirect(w, r, profileDetailPath(profileID), http.StatusFound)
}

func (h *Handler) pageAddLog(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		h.renderError(w, r, "*Handler.pageAddLog", "invalid profile id", err)
		return
	}
	if err = r.ParseForm(); err != nil {
		h.renderError(w, r, "*Handler.pageAddLog", "error parsing log form", fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}

	entry := models.ProfileLog{Text: r.PostForm.Get("text")}
	if _, err = h.services.BiosProfileService.AddLog(r.Context(), profileID, entry); err != nil {
		h.renderError(w, r, "*Handler.pageAddLog", "error adding profile log", err)
		return
	}

	http.Redirect(w, r, profileDetailPath(profileID), http.StatusFound)
}

func (h *Handler) pageDevEnvAudit(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.DevEnvAuditService.GetReport(r.Context())
	if err != nil {
		h.renderError(w, r, "*Handler.pageDevEnvAudit", "error auditing developer environment", err)
		return
	}

	h.render(w, r, http.StatusOK, pageDevEnvAudit, devEnvAuditPageData{Report: report})
}

// pageSystemInventory still renders when the host summary or the software
// scan fails; the failure is shown on the page.
func (h *Handler) pageSystemInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	var data systemInventoryPageData

	if host, err := h.services.SystemInventoryService.GetHostSummary(ctx); err == nil {
		data.Host = &host
	} else {
		log.Warn().Err(err).Str("func", "*Handler.pageSystemInventory").Msg("host summary unavailable")
	}

	software, err := h.services.SystemInventoryService.GetInstalledSoftware(ctx)
	if err != nil {
		resp := responseFromError(err)
		log.Error().Err(err).Str("func", "*Handler.pageSystemInventory").Int("status", resp.status).Msg("error scanning installed software")
		data.Error = resp.message
	}
	data.Software = software

	h.render(w, r, http.StatusOK, pageSystemInventory, data)
}

// loadProfile reads the {id} profile and renders 404 when it does not exist.
func (h *Handler) loadProfile(w http.ResponseWriter, r *http.Request, funcName string) (*models.BiosProfile, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		h.renderError(w, r, funcName, "invalid profile id", err)
		return nil, false
	}

	profile, err := h.services.BiosProfileService.GetProfileByID(r.Context(), id)
	if err != nil {
		h.renderError(w, r, funcName, "error getting bios profile", err)
		return nil, false
	}
	if profile == nil {
		h.renderError(w, r, funcName, "bios profile not found", fmt.Errorf("%w: id %d", store.ErrBiosProfileNotFound, id))
		return nil, false
	}

	return profile, true
}

func profileDetailPath(id int64) string {
	return profilesPath + "/" + strconv.FormatInt(id, 10)
}
