package util

import "github.com/pkg/errors"

var (
	ErrMissingFields        = errors.New("fields missing")
	ErrInvalidCredentials   = errors.New("invalid teacher credentials")
	ErrPresentationNotFound = errors.New("presentation not found")
	ErrCriteriaFailed       = errors.New("criteria failed to save")
	ErrNothingSaved         = errors.New("no records saved")
)

var ErrInvalidSchedule = errors.New("invalid date or time")
