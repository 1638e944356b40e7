package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/system-sage/internal/app"
	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/service"
	"github.com/MKhiriev/system-sage/internal/store"
	"github.com/MKhiriev/system-sage/models"
)

func TestGetSettings(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(ts testServices)
		wantStatus int
		wantBody   string
	}{
		{
			name: "settings of a profile",
			setup: func(ts testServices) {
				ts.profiles.EXPECT().GetSettings(gomock.Any(), int64(1)).Return([]models.ProfileSetting{
					{ID: 10, ProfileID: 1, Category: "CPU", Name: "SMT", Value: "true", ValueType: "bool"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"SMT"`,
		},
		{
			name: "unknown profile",
			setup: func(ts testServices) {
				ts.profiles.EXPECT().GetSettings(gomock.Any(), int64(1)).Return(nil, wrapErr(store.ErrBiosProfileNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   app.MsgProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t, config.Server{}, nil)
			tt.setup(ts)

			rec := serve(h, http.MethodGet, "/api/bios-profiles/1/settings", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAddSetting(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(ts testServices)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"category":"Memory","name":"XMP","value":"Profile 1"}`,
			setup: func(ts testServices) {
				ts.profiles.EXPECT().AddSetting(gomock.Any(), int64(4), models.ProfileSetting{Category: "Memory", Name: "XMP", Value: "Profile 1"}).
					Return(models.ProfileSetting{ID: 1, ProfileID: 4, Category: "Memory", Name: "XMP", Value: "Profile 1", ValueType: "str"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"valueType":"str"`,
		},
		{
			name: "validation error",
			body: `{"category":"","name":"XMP"}`,
			setup: func(ts testServices) {
				ts.profiles.EXPECT().AddSetting(gomock.Any(), int64(4), gomock.Any()).Return(models.ProfileSetting{}, wrapErr(service.ErrInvalidDataProvided))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name: "duplicate setting",
			body: `{"category":"Memory","name":"XMP"}`,
			setup: func(ts testServices) {
				ts.profiles.EXPECT().AddSetting(gomock.Any(), int64(4), gomock.Any()).Return(models.ProfileSetting{}, wrapErr(store.ErrProfileSettingAlreadyExists))
			},
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgSettingAlreadyExists,
		},
		{
			name:       "invalid json",
			body:       `[`,
			setup:      func(ts testServices) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t, config.Server{}, nil)
			tt.setup(ts)

			rec := serve(h, http.MethodPost, "/api/bios-profiles/4/settings", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestUpdateSettingValue(t *testing.T) {
	h, ts := newTestHandler(t, config.Server{}, nil)
	ts.profiles.EXPECT().UpdateSettingValue(gomock.Any(), int64(4), int64(9), "false").
		Return(models.ProfileSetting{ID: 9, ProfileID: 4, Name: "SMT", Value: "false", ValueType: "bool"}, nil)

	rec := serve(h, http.MethodPut, "/api/bios-profiles/4/settings/9", `{"value":"false"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":"false"`)
}

func TestUpdateSettingValue_InvalidSettingID(t *testing.T) {
	h, _ := newTestHandler(t, config.Server{}, nil)

	rec := serve(h, http.MethodPut, "/api/bios-profiles/4/settings/x", `{"value":"false"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSetting(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", err: wrapErr(store.ErrProfileSettingNotFound), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t, config.Server{}, nil)
			ts.profiles.EXPECT().DeleteSetting(gomock.Any(), int64(4), int64(9)).Return(tt.err)

			rec := serve(h, http.MethodDelete, "/api/bios-profiles/4/settings/9", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
