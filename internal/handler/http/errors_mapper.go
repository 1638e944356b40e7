package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/system-sage/internal/app"
	"github.com/MKhiriev/system-sage/internal/inventory"
	"github.com/MKhiriev/system-sage/internal/service"
	"github.com/MKhiriev/system-sage/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

type errorMapping struct {
	target error
	errorResponse
}

// errorStatuses is matched in order, so a cause that is more specific than
// the error wrapping it must come first.
var errorStatuses = []errorMapping{
	{ErrInvalidID, errorResponse{http.StatusBadRequest, app.MsgInvalidID}},
	{ErrInvalidForm, errorResponse{http.StatusBadRequest, app.MsgInvalidForm}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{store.ErrBiosProfileNotFound, errorResponse{http.StatusNotFound, app.MsgProfileNotFound}},
	{store.ErrProfileSettingNotFound, errorResponse{http.StatusNotFound, app.MsgSettingNotFound}},
	{store.ErrProfileSettingAlreadyExists, errorResponse{http.StatusConflict, app.MsgSettingAlreadyExists}},

	{inventory.ErrUnsupportedPlatform, errorResponse{http.StatusNotImplemented, app.MsgUnsupportedPlatform}},
	{service.ErrCollectingHostInfo, errorResponse{http.StatusBadGateway, app.MsgHostInfoUnavailable}},
	{service.ErrCollectingFirmware, errorResponse{http.StatusBadGateway, app.MsgFirmwareInfoUnavailable}},
	{service.ErrScanningSoftware, errorResponse{http.StatusInternalServerError, app.MsgSoftwareScanFailed}},
	{service.ErrAuditingDevEnv, errorResponse{http.StatusInternalServerError, app.MsgAuditFailed}},
}

func responseFromError(err error) errorResponse {
	for _, m := range errorStatuses {
		if errors.Is(err, m.target) {
			return m.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
