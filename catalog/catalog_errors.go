package catalog

import "errors"

var ErrPropertyNotFound = errors.New("property not found")

var ErrDayPassNotFound = errors.New("day pass not found")
