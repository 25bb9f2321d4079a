package zpr

import (
	"errors"
	"reflect"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnformattable = errors.New("unformattable type")
	ErrWrite         = errors.New("write failed")
	ErrInvalidConfig = errors.New("invalid config")
)

// Engine formats values according to its Config and its registered
// formatters. Register every formatter before the engine is shared between
// goroutines; after that an Engine is safe for concurrent use.
type Engine struct {
	cfg   Config
	funcs map[reflect.Type]formatFunc
}

type formatFunc func(s *State, spec Spec, v any)

// std is the engine behind the package-level functions. Nothing registers
// on it, so it never changes.
var std = New(DefaultConfig())

// New returns an Engine using cfg. A BufferSize <= 0 selects
// DefaultBufferSize.
func New(cfg Config) *Engine {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }
