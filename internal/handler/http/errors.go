// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidID is returned when a path parameter is not a positive integer.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidForm is returned when a submitted page form cannot be parsed.
	ErrInvalidForm = errors.New("invalid form")
)
