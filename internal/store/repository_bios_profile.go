package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/migrations"
	"github.com/MKhiriev/system-sage/models"
)

// biosProfileRepository is the SQL implementation of [BiosProfileRepository]
// over the "bios_profiles" table.
type biosProfileRepository struct {
	*DB
	logger *logger.Logger
}

// NewBiosProfileRepository constructs a [BiosProfileRepository] backed by the
// provided database connection and logger.
func NewBiosProfileRepository(db *DB, logger *logger.Logger) BiosProfileRepository {
	logger.Debug().Msg("creating bios profile repository")
	return &biosProfileRepository{
		DB:     db,
		logger: logger,
	}
}

func scanBiosProfile(row rowScanner) (models.BiosProfile, error) {
	var p models.BiosProfile
	err := row.Scan(&p.ID, &p.Name, &p.Description, timestamp{&p.CreatedAt}, timestamp{&p.LastModifiedDate})
	return p, err
}

// FindAll returns every stored profile ordered by last-modified date, newest
// first. An empty table yields an empty, non-nil slice.
func (r *biosProfileRepository) FindAll(ctx context.Context) ([]models.BiosProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfilesQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "biosProfileRepository.FindAll").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "biosProfileRepository.FindAll").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.BiosProfile, 0, 16)
	for rows.Next() {
		p, scanErr := scanBiosProfile(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "biosProfileRepository.FindAll").Msg("failed to scan bios profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		profiles = append(profiles, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "biosProfileRepository.FindAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return profiles, nil
}

// FindByID returns the profile with the given id or [ErrBiosProfileNotFound].
func (r *biosProfileRepository) FindByID(ctx context.Context, id int64) (models.BiosProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfileByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "biosProfileRepository.FindByID").Msg("failed to build query")
		return models.BiosProfile{}, err
	}

	p, err := scanBiosProfile(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.BiosProfile{}, ErrBiosProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "biosProfileRepository.FindByID").Int64("id", id).Msg("failed to select bios profile")
		return models.BiosProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p, nil
}

// Save inserts a new profile when profile.ID is zero. A non-zero id is
// upserted: the row is created under that id if missing and overwritten
// otherwise. The stored row is returned.
func (r *biosProfileRepository) Save(ctx context.Context, profile models.BiosProfile) (models.BiosProfile, error) {
	log := logger.FromContext(ctx)

	if profile.ID == 0 {
		query, args, err := buildInsertProfileQuery(r.builder, profile)
		if err != nil {
			log.Err(err).Str("func", "biosProfileRepository.Save").Msg("failed to build query")
			return models.BiosProfile{}, err
		}

		saved, err := scanBiosProfile(r.DB.QueryRowContext(ctx, query, args...))
		if err != nil {
			log.Err(err).Str("func", "biosProfileRepository.Save").Msg("failed to insert bios profile")
			return models.BiosProfile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return saved, nil
	}

	query, args, err := buildUpsertProfileQuery(r.builder, profile)
	if err != nil {
		log.Err(err).Str("func", "biosProfileRepository.Save").Msg("failed to build query")
		return models.BiosProfile{}, err
	}

	var saved models.BiosProfile
	err = r.withTx(ctx, "biosProfileRepository.Save", func(tx *sql.Tx) error {
		var scanErr error
		saved, scanErr = scanBiosProfile(tx.QueryRowContext(ctx, query, args...))
		if scanErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		if r.dialect == migrations.DialectPostgres {
			if _, seqErr := tx.ExecContext(ctx, resetProfileSequence); seqErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, seqErr)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "biosProfileRepository.Save").Int64("id", profile.ID).Msg("failed to upsert bios profile")
		return models.BiosProfile{}, err
	}

	return saved, nil
}

// DeleteByID removes the profile. Its settings and logs go with it through
// ON DELETE CASCADE.
func (r *biosProfileRepository) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProfileQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "biosProfileRepository.DeleteByID").Msg("failed to build query")
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "biosProfileRepository.DeleteByID").Int64("id", id).Msg("failed to delete bios profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		log.Debug().Str("func", "biosProfileRepository.DeleteByID").Int64("id", id).Msg("no bios profile to delete")
	}

	return nil
}

// touchProfile sets last_modified_date of the profile to now inside tx and
// reports [ErrBiosProfileNotFound] when the profile does not exist.
func (db *DB) touchProfile(ctx context.Context, tx *sql.Tx, profileID int64) error {
	query, args, err := buildTouchProfileQuery(db.builder, profileID, db.now())
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrBiosProfileNotFound
	}

	return nil
}
