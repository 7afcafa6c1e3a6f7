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
	"github.com/fadebook/fadebook/pkg/tenure"
	"github.com/google/uuid"
)

// BarberRewardsService evaluates employer-defined reward definitions.
// A (barber, reward) pair earns at most once, ever: the existence of a
// redemption record short-circuits further evaluation for that pair.
type BarberRewardsService struct {
	barberRewards repository.BarberRewardsRepositoryI
	barbers       repository.BarbersRepositoryI
}

func NewBarberRewardsService(
	barberRewardsRepo repository.BarberRewardsRepositoryI,
	barbersRepo repository.BarbersRepositoryI,
) *BarberRewardsService {
	return &BarberRewardsService{
		barberRewards: barberRewardsRepo,
		barbers:       barbersRepo,
	}
}

func (brs *BarberRewardsService) UpdateRewardProgress(ctx context.Context, barberID uuid.UUID) error {
	barber, err := brs.barbers.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBarberNotFound) {
			return errorvalues.ErrBarberNotFound
		}
		return errors.New("repository searching error: " + err.Error())
	}
	stats, err := brs.barbers.GetStatsByID(ctx, barberID)
	if err != nil {
		// Stats cover active barbers only, so a deactivated barber
		// surfaces here even after GetByID succeeded.
		if errors.Is(err, errorvalues.ErrBarberNotFound) {
			return errorvalues.ErrBarberNotFound
		}
		return errors.New("repository aggregating error: " + err.Error())
	}
	defs, err := brs.barberRewards.ListActive(ctx)
	if err != nil {
		return errors.New("repository listing error: " + err.Error())
	}
	monthsWorked := tenure.WholeMonths(barber.JoinDate, time.Now())
	logger := ctxlog.FromCtx(ctx)
	for _, def := range defs {
		if def.RequirementType == entity.RequireCustom {
			continue
		}
		existing, err := brs.barberRewards.GetRedemption(ctx, barberID, def.ID)
		if err != nil {
			logger.Warn("skipping reward: reading redemption failed",
				"reward_id", def.ID, "error", err.Error())
			continue
		}
		if existing != nil {
			continue
		}
		progress := requirementProgress(def.RequirementType, stats, monthsWorked)
		if progress < def.RequirementValue {
			continue
		}
		_, err = brs.barberRewards.CreateRedemption(ctx, &entity.BarberRewardRedemption{
			BarberID: barberID,
			RewardID: def.ID,
			Status:   entity.RedemptionEarned,
			EarnedAt: time.Now(),
			ProgressAtEarning: entity.ProgressSnapshot{
				Visits:        stats.TotalVisits,
				UniqueClients: stats.UniqueClients,
				MonthsWorked:  monthsWorked,
				RetentionRate: stats.RetentionRate,
			},
		})
		if err != nil {
			logger.Warn("skipping reward: creating redemption failed",
				"reward_id", def.ID, "error", err.Error())
		}
	}
	return nil
}

func (brs *BarberRewardsService) GetRewardProgress(ctx context.Context, barberID uuid.UUID) ([]BarberRewardProgressView, error) {
	barber, err := brs.barbers.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBarberNotFound) {
			return nil, errorvalues.ErrBarberNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	stats, err := brs.barbers.GetStatsByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBarberNotFound) {
			return nil, errorvalues.ErrBarberNotFound
		}
		return nil, errors.New("repository aggregating error: " + err.Error())
	}
	defs, err := brs.barberRewards.ListActive(ctx)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	redemptions, err := brs.barberRewards.ListRedemptionsByBarber(ctx, barberID)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	byReward := make(map[uuid.UUID]*entity.BarberRewardRedemption, len(redemptions))
	for i := range redemptions {
		byReward[redemptions[i].RewardID] = &redemptions[i]
	}
	now := time.Now()
	monthsWorked := tenure.WholeMonths(barber.JoinDate, now)
	views := make([]BarberRewardProgressView, 0, len(defs))
	for _, def := range defs {
		view := BarberRewardProgressView{
			Reward:   def,
			Progress: requirementProgress(def.RequirementType, stats, monthsWorked),
		}
		if def.RequirementType == entity.RequireMonthsWorked {
			// Day-based percentage keeps the bar from jumping a whole
			// step once per calendar month.
			t := tenure.Compute(barber.JoinDate, now, def.RequirementValue)
			view.ProgressPercentage = t.ProgressPercentage
			view.TenureDisplay = t.DisplayText
		} else {
			view.ProgressPercentage = roundedPercentage(view.Progress, def.RequirementValue)
		}
		if redemption, ok := byReward[def.ID]; ok {
			view.Status = redemption.Status
			earnedAt := redemption.EarnedAt
			view.EarnedAt = &earnedAt
			view.RedeemedAt = redemption.RedeemedAt
		}
		views = append(views, view)
	}
	return views, nil
}

func (brs *BarberRewardsService) MarkRedeemed(ctx context.Context, redemptionID, adminID uuid.UUID, notes string) (bool, error) {
	ok, err := brs.barberRewards.MarkRedeemed(ctx, redemptionID, adminID, notes)
	if err != nil {
		return false, errors.New("repository updating error: " + err.Error())
	}
	return ok, nil
}

func requirementProgress(requirementType entity.BarberRequirementType, stats *entity.BarberStats, monthsWorked int) int {
	switch requirementType {
	case entity.RequireVisits:
		return stats.TotalVisits
	case entity.RequireClients:
		return stats.UniqueClients
	case entity.RequireMonthsWorked:
		return monthsWorked
	case entity.RequireClientRetention:
		return int(math.Floor(stats.RetentionRate))
	}
	return 0
}
