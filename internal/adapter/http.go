package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/utils"
	"github.com/MKhiriev/system-sage/models"
)

const (
	profilesPath  = "/api/bios-profiles"
	inventoryPath = "/api/system-inventory"
	auditPath     = "/api/devenv-audit"
	versionPath   = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// cfg.HTTPAddress may omit the scheme, "http" is assumed.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("server response")
		return nil
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) GetProfiles(ctx context.Context) ([]models.BiosProfile, error) {
	var profiles []models.BiosProfile
	if err := h.getJSON(ctx, profilesPath, &profiles); err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}
	return profiles, nil
}

func (h *httpServerAdapter) GetProfile(ctx context.Context, id int64) (*models.BiosProfile, error) {
	var profile *models.BiosProfile
	if err := h.getJSON(ctx, profilePath(id), &profile); err != nil {
		return nil, fmt.Errorf("get profile %d: %w", id, err)
	}
	return profile, nil
}

func (h *httpServerAdapter) CreateProfile(ctx context.Context, profile models.BiosProfile) (models.BiosProfile, error) {
	var created models.BiosProfile

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Post(profilesPath)
	if err != nil {
		return models.BiosProfile{}, fmt.Errorf("create profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BiosProfile{}, err
	}
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.BiosProfile{}, fmt.Errorf("create profile decode response: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, id int64, profile models.BiosProfile) (models.BiosProfile, error) {
	var updated models.BiosProfile

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Put(profilePath(id))
	if err != nil {
		return models.BiosProfile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BiosProfile{}, err
	}
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.BiosProfile{}, fmt.Errorf("update profile decode response: %w", err)
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteProfile(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).Delete(profilePath(id))
	if err != nil {
		return fmt.Errorf("delete profile request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetInstalledSoftware(ctx context.Context) ([]models.SoftwareInfo, error) {
	var software []models.SoftwareInfo
	if err := h.getJSON(ctx, inventoryPath, &software); err != nil {
		return nil, fmt.Errorf("get installed software: %w", err)
	}
	return software, nil
}

func (h *httpServerAdapter) GetDetectedComponents(ctx context.Context) ([]string, error) {
	return h.getAuditList(ctx, "components")
}

func (h *httpServerAdapter) GetEnvironmentVariables(ctx context.Context) ([]string, error) {
	return h.getAuditList(ctx, "env-vars")
}

func (h *httpServerAdapter) GetIdentifiedIssues(ctx context.Context) ([]string, error) {
	return h.getAuditList(ctx, "issues")
}

func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) getAuditList(ctx context.Context, list string) ([]string, error) {
	var items []string
	if err := h.getJSON(ctx, auditPath+"/"+list, &items); err != nil {
		return nil, fmt.Errorf("get audit %s: %w", list, err)
	}
	return items, nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.request(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func profilePath(id int64) string {
	return profilesPath + "/" + strconv.FormatInt(id, 10)
}
