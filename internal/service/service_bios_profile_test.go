package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/internal/mock"
	"github.com/MKhiriev/system-sage/internal/store"
	"github.com/MKhiriev/system-sage/models"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

type biosProfileMocks struct {
	profiles *mock.MockBiosProfileRepository
	settings *mock.MockProfileSettingRepository
	logs     *mock.MockProfileLogRepository
}

func newTestBiosProfileSvc(t *testing.T) (*biosProfileService, biosProfileMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := biosProfileMocks{
		profiles: mock.NewMockBiosProfileRepository(ctrl),
		settings: mock.NewMockProfileSettingRepository(ctrl),
		logs:     mock.NewMockProfileLogRepository(ctrl),
	}

	svc := NewBiosProfileService(&store.Storages{
		BiosProfileRepository:    m.profiles,
		ProfileSettingRepository: m.settings,
		ProfileLogRepository:     m.logs,
	}, logger.Nop()).(*biosProfileService)
	svc.clock = func() time.Time { return fixedNow }

	return svc, m
}

// ── Profiles ─────────────────────────────────────────────────────────────────

func TestBiosProfileService_GetAllProfiles(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	profiles := []models.BiosProfile{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}
	m.profiles.EXPECT().FindAll(ctx).Return(profiles, nil)

	got, err := svc.GetAllProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, profiles, got)
}

func TestBiosProfileService_GetProfileByID_Found(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	m.profiles.EXPECT().FindByID(ctx, int64(1)).Return(models.BiosProfile{ID: 1, Name: "daily"}, nil)

	got, err := svc.GetProfileByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "daily", got.Name)
}

func TestBiosProfileService_GetProfileByID_NotFoundIsNil(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	m.profiles.EXPECT().FindByID(ctx, int64(999)).Return(models.BiosProfile{}, store.ErrBiosProfileNotFound)

	got, err := svc.GetProfileByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBiosProfileService_GetProfileByID_StoreError(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	m.profiles.EXPECT().FindByID(ctx, int64(1)).Return(models.BiosProfile{}, store.ErrExecutingQuery)

	got, err := svc.GetProfileByID(ctx, 1)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestBiosProfileService_SaveProfile_StampsDates(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	in := models.BiosProfile{Name: "daily", LastModifiedDate: stale}

	m.profiles.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.BiosProfile) (models.BiosProfile, error) {
			assert.Equal(t, fixedNow, p.LastModifiedDate)
			assert.Equal(t, fixedNow, p.CreatedAt)
			p.ID = 7
			return p, nil
		},
	)

	saved, err := svc.SaveProfile(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, fixedNow, saved.LastModifiedDate)
}

func TestBiosProfileService_SaveProfile_KeepsCreatedAt(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	created := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	m.profiles.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.BiosProfile) (models.BiosProfile, error) {
			assert.Equal(t, created, p.CreatedAt)
			return p, nil
		},
	)

	_, err := svc.SaveProfile(ctx, models.BiosProfile{ID: 3, CreatedAt: created})
	require.NoError(t, err)
}

func TestBiosProfileService_SaveProfile_StoreError(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	m.profiles.EXPECT().Save(ctx, gomock.Any()).Return(models.BiosProfile{}, store.ErrExecutingStatement)

	_, err := svc.SaveProfile(ctx, models.BiosProfile{Name: "x"})
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestBiosProfileService_UpdateProfile_ForcesPathID(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	m.profiles.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.BiosProfile) (models.BiosProfile, error) {
			assert.Equal(t, int64(5), p.ID)
			assert.Equal(t, fixedNow, p.LastModifiedDate)
			return p, nil
		},
	)

	saved, err := svc.UpdateProfile(ctx, 5, models.BiosProfile{ID: 42, Name: "payload id differs"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), saved.ID)
}

func TestBiosProfileService_DeleteProfile(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	m.profiles.EXPECT().DeleteByID(ctx, int64(404)).Return(nil)

	assert.NoError(t, svc.DeleteProfile(ctx, 404))
}

// ── Settings ─────────────────────────────────────────────────────────────────

func TestBiosProfileService_GetSettings(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	settings := []models.ProfileSetting{{ID: 1, ProfileID: 1, Category: "CPU", Name: "PBO", Value: "Enabled"}}
	gomock.InOrder(
		m.profiles.EXPECT().FindByID(ctx, int64(1)).Return(models.BiosProfile{ID: 1}, nil),
		m.settings.EXPECT().FindByProfile(ctx, int64(1)).Return(settings, nil),
	)

	got, err := svc.GetSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}

func TestBiosProfileService_GetSettings_UnknownProfile(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	m.profiles.EXPECT().FindByID(ctx, int64(9)).Return(models.BiosProfile{}, store.ErrBiosProfileNotFound)

	_, err := svc.GetSettings(ctx, 9)
	assert.ErrorIs(t, err, store.ErrBiosProfileNotFound)
}

func TestBiosProfileService_AddSetting_DefaultsAndOwnership(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	m.settings.EXPECT().Create(ctx, models.ProfileSetting{
		ProfileID: 3,
		Category:  "FanControl",
		Name:      "CPU_Fan_Curve",
		Value:     "Aggressive",
		ValueType: "str",
	}).Return(models.ProfileSetting{ID: 11, ProfileID: 3}, nil)

	got, err := svc.AddSetting(ctx, 3, models.ProfileSetting{
		ID:        99,
		ProfileID: 1,
		Category:  "FanControl",
		Name:      "CPU_Fan_Curve",
		Value:     "Aggressive",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
}

func TestBiosProfileService_UpdateAndDeleteSetting(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	m.settings.EXPECT().UpdateValue(ctx, int64(1), int64(2), "1.30").Return(models.ProfileSetting{ID: 2, Value: "1.30"}, nil)
	m.settings.EXPECT().Delete(ctx, int64(1), int64(2)).Return(store.ErrProfileSettingNotFound)

	updated, err := svc.UpdateSettingValue(ctx, 1, 2, "1.30")
	require.NoError(t, err)
	assert.Equal(t, "1.30", updated.Value)

	assert.ErrorIs(t, svc.DeleteSetting(ctx, 1, 2), store.ErrProfileSettingNotFound)
}

// ── Logs ─────────────────────────────────────────────────────────────────────

func TestBiosProfileService_GetLogs(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	logs := []models.ProfileLog{{ID: 1, ProfileID: 1, Text: "OCCT 1h passed"}}
	gomock.InOrder(
		m.profiles.EXPECT().FindByID(ctx, int64(1)).Return(models.BiosProfile{ID: 1}, nil),
		m.logs.EXPECT().FindByProfile(ctx, int64(1)).Return(logs, nil),
	)

	got, err := svc.GetLogs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, logs, got)
}

func TestBiosProfileService_AddLog_StampsTimestamp(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	m.logs.EXPECT().Create(ctx, models.ProfileLog{ProfileID: 4, Timestamp: fixedNow, Text: "boot loop"}).
		Return(models.ProfileLog{ID: 1, ProfileID: 4, Timestamp: fixedNow, Text: "boot loop"}, nil)

	got, err := svc.AddLog(ctx, 4, models.ProfileLog{Text: "boot loop"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, got.Timestamp)
}

func TestBiosProfileService_AddLog_KeepsGivenTimestamp(t *testing.T) {
	svc, m := newTestBiosProfileSvc(t)
	ctx := context.Background()

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.logs.EXPECT().Create(ctx, models.ProfileLog{ProfileID: 4, Timestamp: at, Text: "x"}).
		Return(models.ProfileLog{}, errors.New("boom"))

	_, err := svc.AddLog(ctx, 4, models.ProfileLog{Timestamp: at, Text: "x"})
	assert.Error(t, err)
}
