package service

import (
	"context"
	"errors"
	"math"
	"time"

	errorvalues "github.com/fadebook/fadebook/internal/error_values"
	"github.com/fadebook/fadebook/internal/repository"
	"github.com/fadebook/fadebook/pkg/ctxlog"
	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/google/uuid"
)

// AchievementsService refreshes and reads per-barber achievement
// progress. One failing definition never aborts the rest of the batch.
type AchievementsService struct {
	achievements repository.AchievementsRepositoryI
	barbers      repository.BarbersRepositoryI
	calculators  map[entity.AchievementCategory]ProgressCalculator
}

func NewAchievementsService(
	achievementsRepo repository.AchievementsRepositoryI,
	barbersRepo repository.BarbersRepositoryI,
	visitsRepo repository.VisitsRepositoryI,
) *AchievementsService {
	return &AchievementsService{
		achievements: achievementsRepo,
		barbers:      barbersRepo,
		calculators:  newCalculators(visitsRepo),
	}
}

func (as *AchievementsService) UpdateProgress(ctx context.Context, barberID uuid.UUID) error {
	barber, err := as.barbers.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBarberNotFound) {
			return errorvalues.ErrBarberNotFound
		}
		return errors.New("repository searching error: " + err.Error())
	}
	defs, err := as.achievements.ListActive(ctx)
	if err != nil {
		return errors.New("repository listing error: " + err.Error())
	}
	logger := ctxlog.FromCtx(ctx)
	for _, def := range defs {
		calculator, ok := as.calculators[def.Category]
		if !ok {
			continue
		}
		result, err := calculator.Calculate(ctx, barber, def)
		if err != nil {
			logger.Warn("skipping achievement: progress computation failed",
				"achievement_id", def.ID, "error", err.Error())
			continue
		}
		stored, err := as.achievements.GetProgress(ctx, barberID, def.ID)
		if err != nil {
			logger.Warn("skipping achievement: reading progress failed",
				"achievement_id", def.ID, "error", err.Error())
			continue
		}
		if stored == nil {
			stored = &entity.BarberAchievement{
				BarberID:      barberID,
				AchievementID: def.ID,
			}
		}
		stored.Progress = result.Progress
		stored.CurrentStreak = result.CurrentStreak
		if result.Metadata != nil {
			stored.Metadata = result.Metadata
		}
		if !stored.IsCompleted && result.Progress >= def.Requirement {
			now := time.Now()
			stored.IsCompleted = true
			stored.CompletedAt = &now
			stored.CompletionCount++
			if def.IsRepeatable && stored.CompletionCount < def.MaxCompletions {
				stored.IsCompleted = false
				stored.Progress = 0
			}
		}
		if err = as.achievements.UpsertProgress(ctx, stored); err != nil {
			logger.Warn("skipping achievement: writing progress failed",
				"achievement_id", def.ID, "error", err.Error())
		}
	}
	return nil
}

func (as *AchievementsService) GetProgress(ctx context.Context, barberID uuid.UUID) ([]AchievementProgressView, error) {
	if _, err := as.barbers.GetByID(ctx, barberID); err != nil {
		if errors.Is(err, errorvalues.ErrBarberNotFound) {
			return nil, errorvalues.ErrBarberNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	defs, err := as.achievements.ListActive(ctx)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	stored, err := as.achievements.ListProgressByBarber(ctx, barberID)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	byAchievement := make(map[uuid.UUID]*entity.BarberAchievement, len(stored))
	for i := range stored {
		byAchievement[stored[i].AchievementID] = &stored[i]
	}
	views := make([]AchievementProgressView, 0, len(defs))
	for _, def := range defs {
		view := AchievementProgressView{Achievement: def}
		if progress, ok := byAchievement[def.ID]; ok {
			view.Progress = progress.Progress
			view.IsCompleted = progress.IsCompleted
			view.CompletedAt = progress.CompletedAt
			view.CompletionCount = progress.CompletionCount
			view.CurrentStreak = progress.CurrentStreak
		}
		view.ProgressPercentage = roundedPercentage(view.Progress, def.Requirement)
		views = append(views, view)
	}
	return views, nil
}

func roundedPercentage(progress, requirement int) int {
	if requirement <= 0 {
		return 100
	}
	pct := int(math.Round(float64(progress) / float64(requirement) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}
