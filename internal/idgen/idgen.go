// Package idgen provides identifiers for dispatch runs.
package idgen

import "github.com/google/uuid"

// NewFunc is called by New. It is a variable so that tests can make
// run identifiers predictable.
var NewFunc = uuid.NewString

// New returns a new, random run identifier.
func New() string { return NewFunc() }
