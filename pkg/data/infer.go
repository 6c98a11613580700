package data

import (
	"strconv"
	"time"
)

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func parseDate(s string, layouts []string) (time.Time, bool) {
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// inferKind votes on the kind of a column over at most sampleSize
// non-missing cells. A strict majority of numbers wins, then a strict
// majority of dates; anything else is categorical. A column without any
// present cell is numeric.
func inferKind(cells []string, missing map[string]struct{}, layouts []string, sampleSize int) Kind {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	var seen, nums, dates int
	for _, s := range cells {
		if _, ok := missing[s]; ok {
			continue
		}
		seen++
		if _, ok := parseNumber(s); ok {
			nums++
		} else if _, ok := parseDate(s, layouts); ok {
			dates++
		}
		if seen == sampleSize {
			break
		}
	}
	switch {
	case seen == 0, nums*2 > seen:
		return Numeric
	case dates*2 > seen:
		return Date
	default:
		return Categorical
	}
}
