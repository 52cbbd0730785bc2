package report

import "errors"

var (
	ErrEmptyRange   = errors.New("no attendance records found for the given range")
	ErrInvalidRange = errors.New("start date must not be after end date")
)
