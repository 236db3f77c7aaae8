package repository

import (
	"errors"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/rpc"
)

// ErrNotFound is returned when a requested record does not exist. Upstream
// 404 responses satisfy errors.Is(err, ErrNotFound) as well.
var ErrNotFound = rpc.ErrNotFound

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
