package format

import (
	"fmt"
	"strings"
)

type (
	CompressionType uint8
	InvalidPolicy   uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	PolicyStop    InvalidPolicy = 0x1 // PolicyStop halts decoding at the first invalid byte.
	PolicySkip    InvalidPolicy = 0x2 // PolicySkip drops invalid bytes.
	PolicyReplace InvalidPolicy = 0x3 // PolicyReplace substitutes U+FFFD for invalid bytes.
	PolicyEscape  InvalidPolicy = 0x4 // PolicyEscape substitutes the text `\xHH` for invalid bytes.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the known compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (p InvalidPolicy) String() string {
	switch p {
	case PolicyStop:
		return "Stop"
	case PolicySkip:
		return "Skip"
	case PolicyReplace:
		return "Replace"
	case PolicyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// IsValid reports whether p is one of the known invalid byte policies.
func (p InvalidPolicy) IsValid() bool {
	return p >= PolicyStop && p <= PolicyEscape
}

// ParseCompressionType parses a case-insensitive compression name ("none", "zstd", "s2", "lz4").
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

// ParseInvalidPolicy parses a case-insensitive policy name ("stop", "skip", "replace", "escape").
func ParseInvalidPolicy(name string) (InvalidPolicy, error) {
	switch strings.ToLower(name) {
	case "stop", "":
		return PolicyStop, nil
	case "skip":
		return PolicySkip, nil
	case "replace":
		return PolicyReplace, nil
	case "escape":
		return PolicyEscape, nil
	default:
		return 0, fmt.Errorf("unknown invalid byte policy %q", name)
	}
}
