// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the HTTP handlers, which
// write them into response bodies, and the client adapter, which maps them
// back onto errors.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a setting or log entry fails
	// validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidID is returned when a path id is not a positive integer.
	MsgInvalidID = "invalid id"

	// MsgInvalidForm is returned when a web form cannot be parsed.
	MsgInvalidForm = "invalid form"

	MsgProfileNotFound         = "bios profile not found"
	MsgSettingNotFound         = "profile setting not found"
	MsgSettingAlreadyExists    = "profile setting already exists"
	MsgUnsupportedPlatform     = "not supported on this platform"
	MsgHostInfoUnavailable     = "host information unavailable"
	MsgFirmwareInfoUnavailable = "firmware information unavailable"
	MsgSoftwareScanFailed      = "installed software scan failed"
	MsgAuditFailed             = "developer environment audit failed"

	// MsgInternalServerError is returned for any other failure.
	MsgInternalServerError = "internal server error"
)
