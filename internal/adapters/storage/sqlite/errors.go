package sqlite

import "errors"

// ErrMigrate is returned when the schema cannot be applied.
var ErrMigrate = errors.New("sqlite migration failed")
