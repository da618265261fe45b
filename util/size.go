package util

import (
	"fmt"
	"strconv"
	"strings"
)

// HumanReadableSize formats a byte count with a binary unit suffix.
func HumanReadableSize(size int64) string {
	const unit = 1024

	if size < unit && size > -unit {
		return fmt.Sprintf("%d B", size)
	}

	suffixes := []string{"KB", "MB", "GB", "TB"}
	value := float64(size) / unit
	for i := 0; i < len(suffixes); i++ {
		if value < unit && value > -unit || i == len(suffixes)-1 {
			return fmt.Sprintf("%.1f %s", value, suffixes[i])
		}
		value /= unit
	}
	return fmt.Sprintf("%d B", size)
}

// ParseSize parses a size argument like "500", "10KB", "1MB" or "2GB" into
// bytes. A bare number is taken as bytes.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid size format: %q", s)
	}

	multipliers := map[string]int64{
		"B":  1,
		"KB": 1024,
		"MB": 1024 * 1024,
		"GB": 1024 * 1024 * 1024,
		"TB": 1024 * 1024 * 1024 * 1024,
	}

	upper := strings.ToUpper(s)
	multiplier := int64(1)
	numPart := upper
	for _, suffix := range []string{"TB", "GB", "MB", "KB", "B"} {
		if strings.HasSuffix(upper, suffix) {
			multiplier = multipliers[suffix]
			numPart = strings.TrimSpace(strings.TrimSuffix(upper, suffix))
			break
		}
	}

	value, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size format: %q", s)
	}

	return value * multiplier, nil
}
