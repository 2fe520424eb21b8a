package ads

import (
	"fmt"
	"strconv"
	"strings"
)

// CleanROAS converts a worksheet ROAS value recorded as a percentage ("120%",
// " 95 ") to a ratio (1.2, 0.95). Blank or unparseable values are 0.
func CleanROAS(v string) float64 {
	v = strings.TrimSpace(strings.ReplaceAll(v, "%", ""))
	if v == "" {
		return 0
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}

	return f / 100
}

// Band returns the dashboard cell colour for a ROAS ratio.
func Band(roas float64) string {
	switch {
	case roas < 0.70:
		return "#B31B1B"

	case roas < 0.95:
		return "#FDC1C5"

	case roas < 1.10:
		return "#FBEEAC"

	case roas < 1.40:
		return "#93C572"

	default:
		return "#019529"
	}
}

// FormatROAS renders a ROAS ratio as a whole percentage, e.g. 1.234 yields
// "123%".
func FormatROAS(roas float64) string {
	return fmt.Sprintf("%.0f%%", roas*100)
}

// Number parses a worksheet numeric cell, tolerating currency formatting
// ("$1,200.50"). Blank or unparseable values are 0.
func Number(v string) float64 {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "$")
	v = strings.ReplaceAll(v, ",", "")

	if v == "" {
		return 0
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}

	return f
}
