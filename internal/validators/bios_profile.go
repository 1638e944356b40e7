package validators

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/system-sage/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldProfileID targets the owning profile of a setting or log entry.
	FieldProfileID = "profile_id"

	// FieldCategory targets the setting category, e.g. "CPU" or "Memory".
	FieldCategory = "category"

	// FieldName targets the setting name.
	FieldName = "name"

	// FieldValueType targets the informational value type hint.
	FieldValueType = "value_type"

	// FieldValue checks that the setting value parses as its value type.
	FieldValue = "value"

	// FieldText targets the text of a log entry.
	FieldText = "text"
)

// Value types a setting may declare. An empty type is treated as ValueTypeString.
const (
	ValueTypeString = "str"
	ValueTypeInt    = "int"
	ValueTypeFloat  = "float"
	ValueTypeBool   = "bool"
)

const (
	maxNameLength    = 128
	maxLogTextLength = 4096
)

var allowedValueTypes = []string{ValueTypeString, ValueTypeInt, ValueTypeFloat, ValueTypeBool}

// BiosProfileValidator validates the children of a BIOS profile:
// ProfileSetting, SettingValueUpdate and ProfileLog. Profiles themselves are
// stored as given.
type BiosProfileValidator struct {
}

// NewBiosProfileValidator returns a BiosProfileValidator as a Validator.
func NewBiosProfileValidator() Validator {
	return &BiosProfileValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted. Returns ErrUnsupportedType for any other type.
func (v *BiosProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProfileSetting:
		return v.validateSetting(ctx, value, fields...)
	case *models.ProfileSetting:
		return v.validateSetting(ctx, *value, fields...)

	case models.ProfileLog:
		return v.validateLog(ctx, value, fields...)
	case *models.ProfileLog:
		return v.validateLog(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSetting checks a ProfileSetting.
//
// Default fields: ProfileID, Category, Name, ValueType, Value.
func (v *BiosProfileValidator) validateSetting(ctx context.Context, setting models.ProfileSetting, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileID, FieldCategory, FieldName, FieldValueType, FieldValue}
	}

	for _, f := range fields {
		switch f {
		case FieldProfileID:
			if setting.ProfileID <= 0 {
				return ErrInvalidProfileID
			}
		case FieldCategory:
			if err := requireText(setting.Category, maxNameLength, ErrEmptyCategory); err != nil {
				return err
			}
		case FieldName:
			if err := requireText(setting.Name, maxNameLength, ErrEmptySettingName); err != nil {
				return err
			}
		case FieldValueType:
			if !isAllowedValueType(setting.ValueType) {
				return fmt.Errorf("%w: %q", ErrInvalidValueType, setting.ValueType)
			}
		case FieldValue:
			if err := checkValue(setting.Value, setting.ValueType); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLog checks a ProfileLog.
//
// Default fields: ProfileID, Text.
func (v *BiosProfileValidator) validateLog(ctx context.Context, log models.ProfileLog, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldProfileID:
			if log.ProfileID <= 0 {
				return ErrInvalidProfileID
			}
		case FieldText:
			if err := requireText(log.Text, maxLogTextLength, ErrEmptyLogText); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func requireText(s string, maxLength int, errEmpty error) error {
	if strings.TrimSpace(s) == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(s) > maxLength {
		return fmt.Errorf("%w: %d characters max", ErrFieldTooLong, maxLength)
	}
	return nil
}

func isAllowedValueType(valueType string) bool {
	if valueType == "" {
		return true
	}
	for _, t := range allowedValueTypes {
		if valueType == t {
			return true
		}
	}
	return false
}

// checkValue reports whether value can be read as valueType. Unknown types
// are left to FieldValueType.
func checkValue(value, valueType string) error {
	var err error
	switch valueType {
	case ValueTypeInt:
		_, err = strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	case ValueTypeFloat:
		_, err = strconv.ParseFloat(strings.TrimSpace(value), 64)
	case ValueTypeBool:
		_, err = strconv.ParseBool(strings.TrimSpace(value))
	}
	if err != nil {
		return fmt.Errorf("%w: %q is not %s", ErrValueTypeMismatch, value, valueType)
	}
	return nil
}
