// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FirmwareSnapshot is the DMI view of the running host: BIOS, system and
// baseboard identification plus the populated memory slots.
type FirmwareSnapshot struct {
	BIOS   BIOSInformation   `json:"bios"`
	System SystemInformation `json:"system"`
	Board  BoardInformation  `json:"board"`
	Memory []MemoryModule    `json:"memory"`
}

type BIOSInformation struct {
	Vendor  string `json:"vendor"`
	Version string `json:"version"`
	Date    string `json:"date"`
}

type SystemInformation struct {
	Manufacturer string `json:"manufacturer"`
	ProductName  string `json:"productName"`
	Version      string `json:"version"`
	SerialNumber string `json:"serialNumber"`
	UUID         string `json:"uuid"`
	SKUNumber    string `json:"skuNumber"`
	Family       string `json:"family"`
}

type BoardInformation struct {
	Manufacturer string `json:"manufacturer"`
	Product      string `json:"product"`
	Version      string `json:"version"`
	SerialNumber string `json:"serialNumber"`
	AssetTag     string `json:"assetTag"`
}

// MemoryModule is one populated DIMM slot.
type MemoryModule struct {
	SizeBytes       int64  `json:"sizeBytes"`
	DeviceLocator   string `json:"deviceLocator"`
	BankLocator     string `json:"bankLocator"`
	MemoryType      string `json:"memoryType"`
	Speed           string `json:"speed"`
	ConfiguredSpeed string `json:"configuredSpeed"`
	Manufacturer    string `json:"manufacturer"`
	PartNumber      string `json:"partNumber"`
}
