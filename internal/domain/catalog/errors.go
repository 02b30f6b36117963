package catalog

import "errors"

// ErrDuplicateModule is returned when two definitions share an id
var ErrDuplicateModule = errors.New("duplicate module id")
