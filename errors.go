package formatstyle

import "errors"

// ErrEngineUnavailable indicates the rendering engine refused a skeleton/locale pair.
var ErrEngineUnavailable = errors.New("formatstyle: engine unavailable")

// ErrUnsupportedSkeleton marks a skeleton token the engine does not understand
var ErrUnsupportedSkeleton = errors.New("formatstyle: unsupported skeleton token")

// ErrHandleClosed is returned when formatting through a closed handle
var ErrHandleClosed = errors.New("formatstyle: handle closed")

// ErrPatternUnavailable indicates no list pattern exists for the requested locale/width.
var ErrPatternUnavailable = errors.New("formatstyle: list pattern unavailable")

// ErrInvalidConfiguration wraps configuration validation failures
var ErrInvalidConfiguration = errors.New("formatstyle: invalid configuration")

// ErrParse indicates text could not be parsed back into a number
var ErrParse = errors.New("formatstyle: cannot parse number")

// ErrLocaleData marks malformed locale data files
var ErrLocaleData = errors.New("formatstyle: invalid locale data")
