package bus

import "errors"

// ErrNoActor is returned when an operation needs the acting user before one was published.
var ErrNoActor = errors.New("no acting user selected")
