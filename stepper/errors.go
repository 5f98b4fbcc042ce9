package stepper

import "errors"

// ErrInvalidMove indicates the phase generator yielded a move that is not
// legal against the live World at commit time — an algorithm bug, not a
// recoverable condition (spec.md §7 "InvalidMove").
var ErrInvalidMove = errors.New("stepper: algorithm emitted an illegal move")
