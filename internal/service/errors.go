package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrCollectingHostInfo = errors.New("error collecting host information")
	ErrCollectingFirmware = errors.New("error collecting firmware information")
	ErrScanningSoftware   = errors.New("error scanning installed software")
	ErrAuditingDevEnv     = errors.New("error auditing developer environment")
)
