package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/service"
	"github.com/MKhiriev/system-sage/models"
)

func TestGetLogs(t *testing.T) {
	h, ts := newTestHandler(t, config.Server{}, nil)
	ts.profiles.EXPECT().GetLogs(gomock.Any(), int64(2)).Return([]models.ProfileLog{
		{ID: 1, ProfileID: 2, Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), Text: "memtest passed"},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/bios-profiles/2/logs", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"profileId":2,"timestamp":"2026-01-02T03:04:05Z","text":"memtest passed"}]`, rec.Body.String())
}

func TestAddLog(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, ts := newTestHandler(t, config.Server{}, nil)
		ts.profiles.EXPECT().AddLog(gomock.Any(), int64(2), models.ProfileLog{Text: "boot ok"}).
			Return(models.ProfileLog{ID: 5, ProfileID: 2, Text: "boot ok"}, nil)

		rec := serve(h, http.MethodPost, "/api/bios-profiles/2/logs", `{"text":"boot ok"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":5`)
	})

	t.Run("empty text", func(t *testing.T) {
		h, ts := newTestHandler(t, config.Server{}, nil)
		ts.profiles.EXPECT().AddLog(gomock.Any(), int64(2), gomock.Any()).
			Return(models.ProfileLog{}, wrapErr(service.ErrInvalidDataProvided))

		rec := serve(h, http.MethodPost, "/api/bios-profiles/2/logs", `{"text":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
