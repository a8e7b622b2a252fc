package domain

import "errors"

var (
	ErrComparisonNotFound   = errors.New("comparison not found")
	ErrMissingID            = errors.New("comparison id is required")
	ErrMissingItemName      = errors.New("both item names are required")
	ErrNegativeVotes        = errors.New("vote tallies must be non-negative")
	ErrDuplicateID          = errors.New("duplicate comparison id")
	ErrInvalidSide          = errors.New("side must be A or B")
	ErrConfirmationDeclined = errors.New("confirmation declined")
)
