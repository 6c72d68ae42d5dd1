package utils

import (
	"strconv"
	"strings"
)

// FormatCNY formats an integer amount (in yuan) as a string like "¥12,000".
// Uses comma as thousands separator; no currency conversion is done anywhere.
func FormatCNY(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		if neg {
			return "-¥" + s
		}
		return "¥" + s
	}

	var b strings.Builder
	// Pre-allocate: digits + separators + sign
	b.Grow(len(s) + len(s)/3 + 4)
	if neg {
		b.WriteString("-¥")
	} else {
		b.WriteString("¥")
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
