package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/system-sage/models"
)

const (
	tableBiosProfiles    = "bios_profiles"
	tableProfileSettings = "profile_settings"
	tableProfileLogs     = "profile_logs"
)

var (
	biosProfileColumns    = []string{"id", "name", "description", "created_at", "last_modified_date"}
	profileSettingColumns = []string{"id", "profile_id", "category", "name", "value", "value_type"}
	profileLogColumns     = []string{"id", "profile_id", "timestamp", "text"}
)

// resetProfileSequence moves the postgres id sequence past ids that were
// inserted explicitly by an upsert.
const resetProfileSequence = `SELECT setval(pg_get_serial_sequence('bios_profiles', 'id'), GREATEST((SELECT MAX(id) FROM bios_profiles), 1))`

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildSelectProfilesQuery(b squirrel.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(biosProfileColumns...).
		From(tableBiosProfiles).
		OrderBy("last_modified_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectProfileByIDQuery(b squirrel.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(biosProfileColumns...).
		From(tableBiosProfiles).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertProfileQuery(b squirrel.StatementBuilderType, p models.BiosProfile) (string, []any, error) {
	query, args, err := b.Insert(tableBiosProfiles).
		Columns("name", "description", "created_at", "last_modified_date").
		Values(p.Name, p.Description, p.CreatedAt, p.LastModifiedDate).
		Suffix(returning(biosProfileColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertProfileQuery inserts the profile under its own id or overwrites
// the stored one. created_at of an existing row is kept.
func buildUpsertProfileQuery(b squirrel.StatementBuilderType, p models.BiosProfile) (string, []any, error) {
	query, args, err := b.Insert(tableBiosProfiles).
		Columns(biosProfileColumns...).
		Values(p.ID, p.Name, p.Description, p.CreatedAt, p.LastModifiedDate).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"name = excluded.name, " +
			"description = excluded.description, " +
			"last_modified_date = excluded.last_modified_date " +
			returning(biosProfileColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteProfileQuery(b squirrel.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Delete(tableBiosProfiles).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildTouchProfileQuery(b squirrel.StatementBuilderType, id int64, at time.Time) (string, []any, error) {
	query, args, err := b.Update(tableBiosProfiles).
		Set("last_modified_date", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSettingsQuery(b squirrel.StatementBuilderType, profileID int64) (string, []any, error) {
	query, args, err := b.Select(profileSettingColumns...).
		From(tableProfileSettings).
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("category", "name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertSettingQuery(b squirrel.StatementBuilderType, s models.ProfileSetting) (string, []any, error) {
	query, args, err := b.Insert(tableProfileSettings).
		Columns("profile_id", "category", "name", "value", "value_type").
		Values(s.ProfileID, s.Category, s.Name, s.Value, s.ValueType).
		Suffix(returning(profileSettingColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateSettingValueQuery(b squirrel.StatementBuilderType, profileID, settingID int64, value string) (string, []any, error) {
	query, args, err := b.Update(tableProfileSettings).
		Set("value", value).
		Where(squirrel.Eq{"id": settingID, "profile_id": profileID}).
		Suffix(returning(profileSettingColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSettingQuery(b squirrel.StatementBuilderType, profileID, settingID int64) (string, []any, error) {
	query, args, err := b.Delete(tableProfileSettings).
		Where(squirrel.Eq{"id": settingID, "profile_id": profileID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectLogsQuery(b squirrel.StatementBuilderType, profileID int64) (string, []any, error) {
	query, args, err := b.Select(profileLogColumns...).
		From(tableProfileLogs).
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("timestamp DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertLogQuery(b squirrel.StatementBuilderType, l models.ProfileLog) (string, []any, error) {
	query, args, err := b.Insert(tableProfileLogs).
		Columns("profile_id", "timestamp", "text").
		Values(l.ProfileID, l.Timestamp, l.Text).
		Suffix(returning(profileLogColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
