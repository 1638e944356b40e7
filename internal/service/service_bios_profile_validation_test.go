package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/system-sage/internal/mock/servicemock"
	"github.com/MKhiriev/system-sage/internal/service"
	"github.com/MKhiriev/system-sage/internal/validators"
	"github.com/MKhiriev/system-sage/models"
)

func newTestValidationSvc(t *testing.T) (service.BiosProfileService, *servicemock.MockBiosProfileService) {
	t.Helper()
	inner := servicemock.NewMockBiosProfileService(gomock.NewController(t))
	return service.NewBiosProfileValidationService().Wrap(inner), inner
}

func TestBiosProfileValidationService_AddSetting_Valid(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	setting := models.ProfileSetting{Category: "Memory", Name: "Frequency", Value: "6000", ValueType: "int"}
	want := setting
	want.ProfileID = 2
	inner.EXPECT().AddSetting(ctx, int64(2), want).Return(models.ProfileSetting{ID: 1}, nil)

	got, err := svc.AddSetting(ctx, 2, setting)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestBiosProfileValidationService_AddSetting_Invalid(t *testing.T) {
	svc, _ := newTestValidationSvc(t)

	_, err := svc.AddSetting(context.Background(), 2, models.ProfileSetting{Category: "Memory", Value: "6000"})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptySettingName)
}

func TestBiosProfileValidationService_UpdateSettingValue_InvalidProfile(t *testing.T) {
	svc, _ := newTestValidationSvc(t)

	_, err := svc.UpdateSettingValue(context.Background(), 0, 1, "x")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestBiosProfileValidationService_AddLog(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	inner.EXPECT().AddLog(ctx, int64(1), models.ProfileLog{ProfileID: 1, Text: "ok"}).Return(models.ProfileLog{ID: 3}, nil)

	got, err := svc.AddLog(ctx, 1, models.ProfileLog{Text: "ok"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)

	_, err = svc.AddLog(ctx, 1, models.ProfileLog{Text: "  "})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestBiosProfileValidationService_PassThrough(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	profile := models.BiosProfile{Name: ""}
	gomock.InOrder(
		inner.EXPECT().GetAllProfiles(ctx).Return(nil, nil),
		inner.EXPECT().GetProfileByID(ctx, int64(1)).Return(nil, nil),
		inner.EXPECT().SaveProfile(ctx, profile).Return(profile, nil),
		inner.EXPECT().UpdateProfile(ctx, int64(1), profile).Return(profile, nil),
		inner.EXPECT().DeleteProfile(ctx, int64(1)).Return(nil),
		inner.EXPECT().GetSettings(ctx, int64(1)).Return(nil, nil),
		inner.EXPECT().DeleteSetting(ctx, int64(1), int64(2)).Return(nil),
		inner.EXPECT().GetLogs(ctx, int64(1)).Return(nil, nil),
	)

	_, _ = svc.GetAllProfiles(ctx)
	_, _ = svc.GetProfileByID(ctx, 1)
	_, _ = svc.SaveProfile(ctx, profile)
	_, _ = svc.UpdateProfile(ctx, 1, profile)
	_ = svc.DeleteProfile(ctx, 1)
	_, _ = svc.GetSettings(ctx, 1)
	_ = svc.DeleteSetting(ctx, 1, 2)
	_, _ = svc.GetLogs(ctx, 1)
}
