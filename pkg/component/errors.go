package component

import (
	"github.com/pkg/errors"
)

var (
	ErrNotFound     = errors.New("component not found")
	ErrTypeMismatch = errors.New("component type mismatch")
)
