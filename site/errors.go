package site

import "errors"

// ErrOutputCollision signals that two distinct source files map to the same
// generated path. The build refuses to pick a winner.
var ErrOutputCollision = errors.New("output path collision")
