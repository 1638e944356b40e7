package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

type profileLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileLogRepository constructs a [ProfileLogRepository] over the
// "profile_logs" table.
func NewProfileLogRepository(db *DB, logger *logger.Logger) ProfileLogRepository {
	logger.Debug().Msg("creating profile log repository")
	return &profileLogRepository{
		DB:     db,
		logger: logger,
	}
}

func scanProfileLog(row rowScanner) (models.ProfileLog, error) {
	var l models.ProfileLog
	err := row.Scan(&l.ID, &l.ProfileID, timestamp{&l.Timestamp}, &l.Text)
	return l, err
}

// FindByProfile lists the log entries of a profile, newest first.
func (r *profileLogRepository) FindByProfile(ctx context.Context, profileID int64) ([]models.ProfileLog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLogsQuery(r.builder, profileID)
	if err != nil {
		log.Err(err).Str("func", "profileLogRepository.FindByProfile").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "profileLogRepository.FindByProfile").Int64("profile_id", profileID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ProfileLog, 0, 16)
	for rows.Next() {
		l, scanErr := scanProfileLog(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "profileLogRepository.FindByProfile").Msg("failed to scan log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, l)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "profileLogRepository.FindByProfile").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// Create appends a log entry and bumps the profile's last-modified date.
// A zero Timestamp is replaced with the current time.
func (r *profileLogRepository) Create(ctx context.Context, entry models.ProfileLog) (models.ProfileLog, error) {
	log := logger.FromContext(ctx)

	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.now()
	}

	query, args, err := buildInsertLogQuery(r.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "profileLogRepository.Create").Msg("failed to build query")
		return models.ProfileLog{}, err
	}

	var created models.ProfileLog
	err = r.withTx(ctx, "profileLogRepository.Create", func(tx *sql.Tx) error {
		if touchErr := r.touchProfile(ctx, tx, entry.ProfileID); touchErr != nil {
			return touchErr
		}

		var scanErr error
		created, scanErr = scanProfileLog(tx.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "profileLogRepository.Create").
			Int64("profile_id", entry.ProfileID).
			Msg("failed to create log entry")

		if errors.Is(err, ErrBiosProfileNotFound) {
			return models.ProfileLog{}, err
		}
		return models.ProfileLog{}, r.violationError(err, ErrExecutingStatement, map[ConstraintViolation]error{
			ForeignKeyViolation: ErrBiosProfileNotFound,
		})
	}

	return created, nil
}
