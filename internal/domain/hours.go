package domain

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// Hours is the opening window of a business for a single day.
type Hours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed"`
}

// WeekdayKey returns the lowercase english day name used as hours map key.
func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// AverageRating returns the arithmetic mean of ratings, or nil when there are none.
func AverageRating(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}

	avg := float64(lo.Sum(ratings)) / float64(len(ratings))
	return &avg
}
