package models

import (
	"fmt"
	"strings"
)

// Period selects the historical lookback window for every time-series
// endpoint. Only three tokens are supported by the API contract.
type Period string

const (
	Period7Days   Period = "7d"
	Period1Month  Period = "1m"
	Period3Months Period = "3m"
)

// DefaultPeriod is used whenever a caller does not supply a period.
const DefaultPeriod = Period7Days

// AllPeriods lists the valid tokens in display order.
func AllPeriods() []Period {
	return []Period{Period7Days, Period1Month, Period3Months}
}

// ParsePeriod is the single place where a raw period token becomes a typed
// Period. Every HTTP handler must go through it so that invalid tokens are
// rejected uniformly instead of silently defaulting somewhere downstream.
//
// An empty token resolves to DefaultPeriod. Anything else outside the valid
// set returns an error whose message names the offending value and the
// valid set.
func ParsePeriod(s string) (Period, error) {
	token := strings.TrimSpace(s)
	if token == "" {
		return DefaultPeriod, nil
	}
	switch Period(token) {
	case Period7Days, Period1Month, Period3Months:
		return Period(token), nil
	}
	return "", fmt.Errorf("無効な期間が指定されました: %s（有効な期間: %s）", token, periodList())
}

func periodList() string {
	tokens := make([]string, 0, len(AllPeriods()))
	for _, p := range AllPeriods() {
		tokens = append(tokens, string(p))
	}
	return strings.Join(tokens, ", ")
}

// Days resolves the period to a concrete day count.
//
// Unrecognized values fall back to 7 days rather than failing; validation
// belongs to ParsePeriod, and by the time a Period reaches an adapter it is
// expected to already be a valid one.
func (p Period) Days() int {
	switch p {
	case Period1Month:
		return 30
	case Period3Months:
		return 90
	default:
		return 7
	}
}

func (p Period) String() string { return string(p) }
