package sanitize

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 1MiB.
	DefaultMaxInputSize = 1 << 20
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "OBJECTS_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// Input guards a raw document before it is decoded: it enforces the size
// limit and rejects invalid UTF-8. The document is returned unchanged.
func Input(data []byte) ([]byte, error) {
	limit := MaxInputSize()
	if len(data) > limit {
		// Rejected rather than truncated: a truncated document would decode differently.
		return nil, fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(data), limit)
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	return data, nil
}

// MaxInputSize returns the configured limit, honouring EnvMaxInputSize.
func MaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
