package service

import (
	"errors"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
)

var (
	// ErrValidation is wrapped by every input check failing before a call
	// reaches the upstream.
	ErrValidation = errors.New("validation failed")

	// ErrNoScoreRecord marks a score edit for a student that has no record
	// yet. Records are only updated here, never created.
	ErrNoScoreRecord = errors.New("no score record to update")

	// ErrStaleSelection is returned when the selection changed while an
	// aggregation was in flight and its result was discarded.
	ErrStaleSelection = errors.New("selection changed while loading")

	ErrPartialBatch = contract.ErrPartialBatch
)
