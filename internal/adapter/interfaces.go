// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the system-sage REST API.
//
// [ServerAdapter] hides the transport from the command line client. Non-2xx
// responses are mapped by mapHTTPError to the sentinel errors of this
// package, so callers can branch with [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrNotImplemented] for 501).
package adapter

import (
	"context"

	"github.com/MKhiriev/system-sage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running system-sage server.
type ServerAdapter interface {
	// GetProfiles lists every BIOS profile.
	GetProfiles(ctx context.Context) ([]models.BiosProfile, error)

	// GetProfile returns nil without error when the server knows no profile
	// with that id.
	GetProfile(ctx context.Context, id int64) (*models.BiosProfile, error)

	CreateProfile(ctx context.Context, profile models.BiosProfile) (models.BiosProfile, error)

	// UpdateProfile stores profile under id. The server creates the profile
	// when it does not exist yet.
	UpdateProfile(ctx context.Context, id int64, profile models.BiosProfile) (models.BiosProfile, error)

	DeleteProfile(ctx context.Context, id int64) error

	// GetInstalledSoftware triggers a fresh inventory scan on the server.
	GetInstalledSoftware(ctx context.Context) ([]models.SoftwareInfo, error)

	GetDetectedComponents(ctx context.Context) ([]string, error)
	GetEnvironmentVariables(ctx context.Context) ([]string, error)
	GetIdentifiedIssues(ctx context.Context) ([]string, error)

	// GetServerVersion returns the plain text version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
