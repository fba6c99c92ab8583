package report

import (
	"fmt"

	"github.com/shibukawa/columnlens"
)

// Format selects the artifact flavor to generate
type Format string

const (
	FormatSQL    Format = "sql"
	FormatPython Format = "python"
	FormatBoth   Format = "both"
)

// ParseFormat validates a format name from a flag or config value
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatSQL, FormatPython, FormatBoth:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: %q", columnlens.ErrUnknownFormat, name)
	}
}
