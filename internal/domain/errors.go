package domain

import "errors"

var (
	ErrUnknownSpread      = errors.New("unknown spread")
	ErrDeckTooSmall       = errors.New("deck has too few cards for spread")
	ErrCardCountMismatch  = errors.New("card count does not match spread positions")
	ErrInvalidOrientation = errors.New("orientation must be upright or reversed")
	ErrInvalidDepth       = errors.New("depth must be light, standard or deep")
	ErrNoBoundCards       = errors.New("no cards could be bound to the spread")
)
