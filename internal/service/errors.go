package service

import "errors"

var (
	ErrIncidentNotFound = errors.New("incident not found")
	ErrInvalidType      = errors.New("invalid incident type")
	ErrForbidden        = errors.New("operation is not allowed for this session")

	// объединение и обязательства
	ErrNotEligible      = errors.New("session is not eligible for this operation")
	ErrAlreadyJoined    = errors.New("already joined this incident")
	ErrOwnIncident      = errors.New("cannot join own incident")
	ErrInvalidCount     = errors.New("count must be a positive integer")
	ErrIncidentResolved = errors.New("incident is already resolved")

	// закрытие
	ErrEmptyNote       = errors.New("resolution note is required")
	ErrAlreadyResolved = errors.New("incident has already been resolved")

	ErrWizardNotFound = errors.New("wizard session not found or expired")
	ErrWizardConflict = errors.New("wizard session was changed concurrently")
)
