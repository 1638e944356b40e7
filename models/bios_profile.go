// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BiosProfile is a named firmware configuration record kept in the logbook.
// It is managed independently of the firmware it describes: saving a profile
// never touches the BIOS of the running host.
type BiosProfile struct {
	// ID is the store-assigned identifier. Zero means "not persisted yet".
	ID int64 `json:"id"`

	// Name is a short human-readable label, e.g. "X670E daily 6000CL30".
	Name string `json:"name"`

	// Description is free text, usually the board and CPU the profile targets.
	Description string `json:"description"`

	// CreatedAt is set once, on the first save.
	CreatedAt time.Time `json:"createdAt"`

	// LastModifiedDate is overwritten by the service on every save and bumped
	// whenever a setting or log entry of the profile changes.
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}

// TableName returns the name of the database table
// associated with the BiosProfile model.
func (p BiosProfile) TableName() string {
	return "bios_profiles"
}

// ProfileSetting is a single BIOS option captured in a profile,
// e.g. category "Memory", name "EXPO", value "6000CL30".
type ProfileSetting struct {
	ID        int64  `json:"id"`
	ProfileID int64  `json:"profileId"`
	Category  string `json:"category"`
	Name      string `json:"name"`
	Value     string `json:"value"`

	// ValueType is an informational hint ("str", "int", "bool", ...).
	ValueType string `json:"valueType"`
}

// TableName returns the name of the database table
// associated with the ProfileSetting model.
func (s ProfileSetting) TableName() string {
	return "profile_settings"
}

// ProfileLog is a timestamped note attached to a profile, typically a
// stability test result.
type ProfileLog struct {
	ID        int64     `json:"id"`
	ProfileID int64     `json:"profileId"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// TableName returns the name of the database table
// associated with the ProfileLog model.
func (l ProfileLog) TableName() string {
	return "profile_logs"
}

// SettingValueUpdate is the request body for changing a single setting value.
type SettingValueUpdate struct {
	Value string `json:"value"`
}
