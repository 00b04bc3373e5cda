package database

import "errors"

// ErrNotReady indicates Connection was called before Start established
// the database pool.
var ErrNotReady = errors.New("database not ready")
