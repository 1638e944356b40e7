package devenv

import "errors"

var (
	ErrReadingCatalog = errors.New("error reading tool catalog")
	ErrInvalidCatalog = errors.New("invalid tool catalog")
)
