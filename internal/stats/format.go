// Package stats derives display values from normalised records: number and
// duration formatting, engagement, identifier extraction and the channel and
// video summaries the dashboard panels show.
package stats

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var durationRE = regexp.MustCompile(`PT(\d+H)?(\d+M)?(\d+S)?`)

// FormatNumber renders a count with a K, M or B suffix and one decimal.
// Values below one thousand are printed as is.
func FormatNumber(n float64) string {
	switch {
	case n >= 1e9:
		return toFixed(n/1e9, 1) + "B"
	case n >= 1e6:
		return toFixed(n/1e6, 1) + "M"
	case n >= 1e3:
		return toFixed(n/1e3, 1) + "K"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatCount is FormatNumber for the decimal strings the API returns.
func FormatCount(s string) string {
	return FormatNumber(ParseCount(s))
}

// FormatDuration turns an ISO-8601 PT#H#M#S duration into H:MM:SS, or M:SS
// without an hour component. Input without a PT token yields 0:00.
func FormatDuration(duration string) string {
	m := durationRE.FindStringSubmatch(duration)
	if m == nil {
		return "0:00"
	}

	hours := strings.TrimSuffix(m[1], "H")
	minutes := strings.TrimSuffix(m[2], "M")
	seconds := strings.TrimSuffix(m[3], "S")

	if hours != "" {
		return hours + ":" + padTwo(minutes) + ":" + padTwo(seconds)
	}
	if minutes == "" {
		minutes = "0"
	}
	return minutes + ":" + padTwo(seconds)
}

// EngagementRate is (likes + comments) / views * 100 with two decimals.
// It is "0" when views is zero.
func EngagementRate(likes, comments, views string) string {
	v := ParseCount(views)
	if v == 0 {
		return "0"
	}
	rate := (ParseCount(likes) + ParseCount(comments)) / v * 100
	return toFixed(rate, 2)
}

// ParseCount reads the leading decimal integer of s, ignoring leading white
// space and anything after the digits. Strings without digits parse as 0.
// The result is a float64 so counts beyond int64 still compare and divide.
func ParseCount(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return n
}

func padTwo(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}

// toFixed formats x with the given number of decimals using the exact binary
// value of x. Ties round away from zero, so -2.5 becomes "-3".
func toFixed(x float64, digits int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}

	neg := x < 0
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	v := new(big.Float).SetPrec(256).SetFloat64(math.Abs(x))
	v.Mul(v, new(big.Float).SetPrec(256).SetInt(scale))
	v.Add(v, big.NewFloat(0.5))

	n, _ := v.Int(nil)
	abs := n.String()
	if digits > 0 {
		if len(abs) <= digits {
			abs = strings.Repeat("0", digits-len(abs)+1) + abs
		}
		abs = abs[:len(abs)-digits] + "." + abs[len(abs)-digits:]
	}
	if neg {
		return "-" + abs
	}
	return abs
}

// round is Math.round: halves go up.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}
