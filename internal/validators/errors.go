package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidProfileID  = errors.New("invalid profile ID")
	ErrEmptyCategory     = errors.New("category is required")
	ErrEmptySettingName  = errors.New("setting name is required")
	ErrInvalidValueType  = errors.New("invalid value type")
	ErrValueTypeMismatch = errors.New("value does not match value type")
	ErrEmptyLogText      = errors.New("log text is required")
	ErrFieldTooLong      = errors.New("field is too long")
)
