package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/fadebook/fadebook/internal/repository"
	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/fadebook/fadebook/pkg/tenure"
	"github.com/google/uuid"
)

// consistencyWindowDays bounds the backward scan for daily streaks.
const consistencyWindowDays = 30

// consistencyWindowWeeks is the trailing window for weekly consistency.
const consistencyWindowWeeks = 12

type ProgressResult struct {
	Progress      int
	CurrentStreak int
	Metadata      map[string]any
}

// ProgressCalculator computes one achievement category's progress.
type ProgressCalculator interface {
	Category() entity.AchievementCategory
	Calculate(ctx context.Context, barber *entity.Barber, def *entity.Achievement) (ProgressResult, error)
}

type tenureCalculator struct{}

func (tenureCalculator) Category() entity.AchievementCategory {
	return entity.CategoryTenure
}

func (tenureCalculator) Calculate(_ context.Context, barber *entity.Barber, def *entity.Achievement) (ProgressResult, error) {
	now := time.Now()
	if def.RequirementType == "milestone" {
		months := tenure.WholeMonths(barber.JoinDate, now)
		if months > def.Requirement {
			months = def.Requirement
		}
		return ProgressResult{Progress: months}, nil
	}
	return ProgressResult{Progress: tenure.DaysBetween(barber.JoinDate, now)}, nil
}

type visitsCalculator struct {
	visits repository.VisitsRepositoryI
}

func (visitsCalculator) Category() entity.AchievementCategory {
	return entity.CategoryVisits
}

func (c visitsCalculator) Calculate(ctx context.Context, barber *entity.Barber, def *entity.Achievement) (ProgressResult, error) {
	var (
		count int
		err   error
	)
	switch def.Timeframe {
	case "daily":
		from := startOfDay(time.Now())
		count, err = c.visits.CountByBarberBetween(ctx, barber.ID, from, from.AddDate(0, 0, 1))
	case "weekly":
		from := startOfWeek(time.Now())
		count, err = c.visits.CountByBarberBetween(ctx, barber.ID, from, from.AddDate(0, 0, 7))
	case "monthly":
		from := startOfMonth(time.Now())
		count, err = c.visits.CountByBarberBetween(ctx, barber.ID, from, from.AddDate(0, 1, 0))
	default:
		count, err = c.visits.CountByBarber(ctx, barber.ID)
	}
	if err != nil {
		return ProgressResult{}, errors.New("counting visits error: " + err.Error())
	}
	return ProgressResult{Progress: count}, nil
}

type clientsCalculator struct {
	visits repository.VisitsRepositoryI
}

func (clientsCalculator) Category() entity.AchievementCategory {
	return entity.CategoryClients
}

func (c clientsCalculator) Calculate(ctx context.Context, barber *entity.Barber, def *entity.Achievement) (ProgressResult, error) {
	var (
		count int
		err   error
	)
	if def.Timeframe == "monthly" {
		from := startOfMonth(time.Now())
		count, err = c.visits.CountDistinctClientsBetween(ctx, barber.ID, from, from.AddDate(0, 1, 0))
	} else {
		count, err = c.visits.CountDistinctClients(ctx, barber.ID)
	}
	if err != nil {
		return ProgressResult{}, errors.New("counting clients error: " + err.Error())
	}
	return ProgressResult{Progress: count}, nil
}

type consistencyCalculator struct {
	visits repository.VisitsRepositoryI
}

func (consistencyCalculator) Category() entity.AchievementCategory {
	return entity.CategoryConsistency
}

func (c consistencyCalculator) Calculate(ctx context.Context, barber *entity.Barber, def *entity.Achievement) (ProgressResult, error) {
	switch def.Subcategory {
	case "daily_visits":
		return c.dailyStreak(ctx, barber.ID, def.MinPerUnit)
	case "weekly_consistency":
		return c.weeklyConsistency(ctx, barber.ID, def.MinPerUnit)
	}
	return ProgressResult{}, errors.New("unknown consistency subcategory: " + def.Subcategory)
}

// dailyStreak walks back day by day. The scan stops at the first day
// below the threshold, except day 0: today may still be in progress.
// Day boundaries are UTC, matching the store's day buckets.
func (c consistencyCalculator) dailyStreak(ctx context.Context, barberID uuid.UUID, minPerDay int) (ProgressResult, error) {
	today := startOfDay(time.Now().UTC())
	from := today.AddDate(0, 0, -(consistencyWindowDays - 1))
	days, err := c.visits.DailyCountsByBarber(ctx, barberID, from, today.AddDate(0, 0, 1))
	if err != nil {
		return ProgressResult{}, errors.New("getting daily counts error: " + err.Error())
	}
	if minPerDay < 1 {
		minPerDay = 1
	}
	counts := make(map[time.Time]int, len(days))
	for _, d := range days {
		counts[startOfDay(d.Day.UTC())] = d.Count
	}
	streak := 0
	for d := 0; d < consistencyWindowDays; d++ {
		day := today.AddDate(0, 0, -d)
		if counts[day] >= minPerDay {
			streak++
			continue
		}
		if d == 0 {
			continue
		}
		break
	}
	return ProgressResult{
		Progress:      streak,
		CurrentStreak: streak,
		Metadata:      map[string]any{"window_days": consistencyWindowDays, "min_per_day": minPerDay},
	}, nil
}

// weeklyConsistency counts qualifying Sunday-start weeks in the trailing
// window. Weeks don't have to be contiguous. Week boundaries are UTC,
// matching the store's day buckets.
func (c consistencyCalculator) weeklyConsistency(ctx context.Context, barberID uuid.UUID, minPerWeek int) (ProgressResult, error) {
	currentWeek := startOfWeek(time.Now().UTC())
	from := currentWeek.AddDate(0, 0, -7*(consistencyWindowWeeks-1))
	days, err := c.visits.DailyCountsByBarber(ctx, barberID, from, currentWeek.AddDate(0, 0, 7))
	if err != nil {
		return ProgressResult{}, errors.New("getting daily counts error: " + err.Error())
	}
	if minPerWeek < 1 {
		minPerWeek = 1
	}
	weekTotals := make(map[time.Time]int, consistencyWindowWeeks)
	for _, d := range days {
		weekTotals[startOfWeek(d.Day.UTC())] += d.Count
	}
	qualifying := 0
	for _, total := range weekTotals {
		if total >= minPerWeek {
			qualifying++
		}
	}
	return ProgressResult{
		Progress: qualifying,
		Metadata: map[string]any{"window_weeks": consistencyWindowWeeks, "min_per_week": minPerWeek},
	}, nil
}

type qualityCalculator struct {
	visits repository.VisitsRepositoryI
}

func (qualityCalculator) Category() entity.AchievementCategory {
	return entity.CategoryQuality
}

func (c qualityCalculator) Calculate(ctx context.Context, barber *entity.Barber, def *entity.Achievement) (ProgressResult, error) {
	switch def.Subcategory {
	case "client_retention":
		return ProgressResult{Progress: int(math.Floor(barber.RetentionRate))}, nil
	case "service_variety":
		count, err := c.visits.CountDistinctServices(ctx, barber.ID)
		if err != nil {
			return ProgressResult{}, errors.New("counting services error: " + err.Error())
		}
		return ProgressResult{Progress: count}, nil
	}
	return ProgressResult{}, errors.New("unknown quality subcategory: " + def.Subcategory)
}

func newCalculators(visits repository.VisitsRepositoryI) map[entity.AchievementCategory]ProgressCalculator {
	calculators := []ProgressCalculator{
		tenureCalculator{},
		visitsCalculator{visits: visits},
		clientsCalculator{visits: visits},
		consistencyCalculator{visits: visits},
		qualityCalculator{visits: visits},
	}
	byCategory := make(map[entity.AchievementCategory]ProgressCalculator, len(calculators))
	for _, c := range calculators {
		byCategory[c.Category()] = c
	}
	return byCategory
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek truncates to the most recent Sunday.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
