package services

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks caller mistakes: malformed period lists, periods
// out of range, unusable uploads. Handlers turn it into a 4xx response.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrUnreadableTable = fmt.Errorf("%w: unreadable delivery table", ErrInvalidArgument)
	ErrMissingColumn   = fmt.Errorf("%w: missing required column", ErrInvalidArgument)
	ErrTooManyPeriods  = fmt.Errorf("%w: too many periods", ErrInvalidArgument)
)
