package store

import "github.com/MKhiriev/system-sage/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	BiosProfileRepository    BiosProfileRepository
	ProfileSettingRepository ProfileSettingRepository
	ProfileLogRepository     ProfileLogRepository
}

// NewStorages builds all repositories over one connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		BiosProfileRepository:    NewBiosProfileRepository(db, log),
		ProfileSettingRepository: NewProfileSettingRepository(db, log),
		ProfileLogRepository:     NewProfileLogRepository(db, log),
	}
}
