// Package tenure holds the calendar math for employment duration.
// Eligibility uses whole calendar months; the percentage metric uses an
// average-day approximation so progress bars move daily instead of
// jumping once per month.
package tenure

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// avgDaysPerMonth is used only for the percentage metric.
const avgDaysPerMonth = 30.44

type Tenure struct {
	TotalDays          int    `json:"total_days"`
	WholeMonths        int    `json:"whole_months"`
	RemainingDays      int    `json:"remaining_days"`
	RequiredDays       int    `json:"required_days"`
	ProgressPercentage int    `json:"progress_percentage"`
	DisplayText        string `json:"display_text"`
}

// Compute measures employment duration from joinDate to now against a
// requirement expressed in months. joinDate after now yields zero values.
func Compute(joinDate, now time.Time, requirementMonths int) Tenure {
	if now.Before(joinDate) {
		return Tenure{DisplayText: "0 days"}
	}
	totalDays := DaysBetween(joinDate, now)
	wholeMonths := WholeMonths(joinDate, now)
	remaining := DaysBetween(joinDate.AddDate(0, wholeMonths, 0), now)

	requiredDays := int(math.Floor(float64(requirementMonths) * avgDaysPerMonth))
	pct := 100
	if requiredDays > 0 {
		pct = int(math.Round(float64(totalDays) / float64(requiredDays) * 100))
		if pct > 100 {
			pct = 100
		}
	}
	return Tenure{
		TotalDays:          totalDays,
		WholeMonths:        wholeMonths,
		RemainingDays:      remaining,
		RequiredDays:       requiredDays,
		ProgressPercentage: pct,
		DisplayText:        displayText(wholeMonths, remaining, totalDays),
	}
}

// WholeMonths counts full calendar months between from and to by walking
// a cursor one month at a time. Handles variable month lengths, unlike a
// fixed 30-day division.
func WholeMonths(from, to time.Time) int {
	months := 0
	cursor := from.AddDate(0, 1, 0)
	for !cursor.After(to) {
		months++
		cursor = cursor.AddDate(0, 1, 0)
	}
	return months
}

// DaysBetween counts calendar days from a to b, ignoring time of day.
func DaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func displayText(wholeMonths, remainingDays, totalDays int) string {
	if wholeMonths == 0 {
		return plural(totalDays, "day")
	}
	years := wholeMonths / 12
	months := wholeMonths % 12
	parts := make([]string, 0, 3)
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	if months > 0 {
		parts = append(parts, plural(months, "month"))
	}
	if remainingDays > 0 {
		parts = append(parts, plural(remainingDays, "day"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
