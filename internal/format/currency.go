// Package format holds the display formatting helpers shared by the
// dashboard views and the plain-text summary output.
package format

import (
	"fmt"
	"strings"

	appErrors "tradedeck/internal/errors"
)

// Pounds renders an amount of pence as a pound string with thousands
// separators, e.g. 123456 -> "£1,234.56".
func Pounds(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	whole := pence / 100
	frac := pence % 100
	return fmt.Sprintf("%s£%s.%02d", sign, groupThousands(whole), frac)
}

// PoundsCompact renders an amount for tight columns: "£840", "£2.5k", "£1.2m".
// Pence are dropped; amounts under a pound render as "£0".
func PoundsCompact(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	pounds := pence / 100
	switch {
	case pounds >= 1_000_000:
		return fmt.Sprintf("%s£%.1fm", sign, float64(pounds)/1_000_000)
	case pounds >= 1_000:
		return fmt.Sprintf("%s£%.1fk", sign, float64(pounds)/1_000)
	default:
		return fmt.Sprintf("%s£%d", sign, pounds)
	}
}

// ParsePounds converts user input like "£1,234.56", "1234.5" or "950" into
// pence. At most two decimal places are accepted.
func ParsePounds(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "£")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, parseAmountError(raw)
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	wholePart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		wholePart, fracPart = s[:idx], s[idx+1:]
		if len(fracPart) > 2 {
			return 0, parseAmountError(raw)
		}
	}
	if wholePart == "" {
		wholePart = "0"
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	var pence int64
	for _, part := range []struct {
		digits string
		scale  int64
	}{{wholePart, 100}, {fracPart, 1}} {
		var n int64
		for _, r := range part.digits {
			if r < '0' || r > '9' {
				return 0, parseAmountError(raw)
			}
			n = n*10 + int64(r-'0')
		}
		pence += n * part.scale
	}
	if negative {
		pence = -pence
	}
	return pence, nil
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func parseAmountError(raw string) error {
	return appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("invalid amount: %q", raw), nil)
}
