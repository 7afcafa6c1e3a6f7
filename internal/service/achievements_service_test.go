package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	errorvalues "github.com/fadebook/fadebook/internal/error_values"
	"github.com/fadebook/fadebook/internal/repository/mocks"
	"github.com/fadebook/fadebook/internal/service"
	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testBarber(id uuid.UUID) *entity.Barber {
	return &entity.Barber{
		ID:            id,
		Name:          "test_barber",
		JoinDate:      time.Now().AddDate(-1, 0, 0),
		RetentionRate: 82.5,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
}

func TestUpdateAchievementProgress(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	achievementsRepo := mocks.NewMockAchievementsRepositoryI(ctrl)
	barbersRepo := mocks.NewMockBarbersRepositoryI(ctrl)
	visitsRepo := mocks.NewMockVisitsRepositoryI(ctrl)

	serv := service.NewAchievementsService(achievementsRepo, barbersRepo, visitsRepo)
	barberID := uuid.New()
	visitsDef := &entity.Achievement{
		ID:              uuid.New(),
		Title:           "century_club",
		Category:        entity.CategoryVisits,
		Subcategory:     "milestone",
		RequirementType: "count",
		Requirement:     100,
		Tier:            "gold",
		Points:          50,
		MaxCompletions:  1,
		IsActive:        true,
	}
	ctx := context.Background()
	t.Run("first completion stamps completed_at", func(t *testing.T) {
		var upserted *entity.BarberAchievement
		barbersRepo.EXPECT().GetByID(gomock.Any(), barberID).Return(testBarber(barberID), nil)
		achievementsRepo.EXPECT().ListActive(gomock.Any()).Return([]*entity.Achievement{visitsDef}, nil)
		visitsRepo.EXPECT().CountByBarber(gomock.Any(), barberID).Return(120, nil)
		achievementsRepo.EXPECT().GetProgress(gomock.Any(), barberID, visitsDef.ID).Return(nil, nil)
		achievementsRepo.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, progress *entity.BarberAchievement) error {
				upserted = progress
				return nil
			})
		err := serv.UpdateProgress(ctx, barberID)
		assert.NoError(t, err)
		assert.Equal(t, 120, upserted.Progress)
		assert.True(t, upserted.IsCompleted)
		assert.NotNil(t, upserted.CompletedAt)
		assert.Equal(t, 1, upserted.CompletionCount)
	})
	t.Run("completed achievement stays completed", func(t *testing.T) {
		completedAt := time.Now().AddDate(0, -1, 0)
		var upserted *entity.BarberAchievement
		barbersRepo.EXPECT().GetByID(gomock.Any(), barberID).Return(testBarber(barberID), nil)
		achievementsRepo.EXPECT().ListActive(gomock.Any()).Return([]*entity.Achievement{visitsDef}, nil)
		visitsRepo.EXPECT().CountByBarber(gomock.Any(), barberID).Return(150, nil)
		achievementsRepo.EXPECT().GetProgress(gomock.Any(), barberID, visitsDef.ID).Return(&entity.BarberAchievement{
			BarberID:        barberID,
			AchievementID:   visitsDef.ID,
			Progress:        120,
			IsCompleted:     true,
			CompletedAt:     &completedAt,
			CompletionCount: 1,
		}, nil)
		achievementsRepo.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, progress *entity.BarberAchievement) error {
				upserted = progress
				return nil
			})
		err := serv.UpdateProgress(ctx, barberID)
		assert.NoError(t, err)
		assert.True(t, upserted.IsCompleted)
		assert.Equal(t, completedAt, *upserted.CompletedAt)
		assert.Equal(t, 1, upserted.CompletionCount)
	})
	t.Run("repeatable achievement resets for the next lap", func(t *testing.T) {
		repeatable := &entity.Achievement{
			ID:              uuid.New(),
			Title:           "weekly_ten",
			Category:        entity.CategoryVisits,
			Subcategory:     "volume",
			RequirementType: "count",
			Requirement:     10,
			Timeframe:       "weekly",
			Tier:            "bronze",
			Points:          10,
			IsRepeatable:    true,
			MaxCompletions:  12,
			IsActive:        true,
		}
		var upserted *entity.BarberAchievement
		barbersRepo.EXPECT().GetByID(gomock.Any(), barberID).Return(testBarber(barberID), nil)
		achievementsRepo.EXPECT().ListActive(gomock.Any()).Return([]*entity.Achievement{repeatable}, nil)
		visitsRepo.EXPECT().CountByBarberBetween(gomock.Any(), barberID, gomock.Any(), gomock.Any()).Return(11, nil)
		achievementsRepo.EXPECT().GetProgress(gomock.Any(), barberID, repeatable.ID).Return(&entity.BarberAchievement{
			BarberID:        barberID,
			AchievementID:   repeatable.ID,
			Progress:        8,
			CompletionCount: 2,
		}, nil)
		achievementsRepo.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, progress *entity.BarberAchievement) error {
				upserted = progress
				return nil
			})
		err := serv.UpdateProgress(ctx, barberID)
		assert.NoError(t, err)
		assert.False(t, upserted.IsCompleted)
		assert.Equal(t, 0, upserted.Progress)
		assert.Equal(t, 3, upserted.CompletionCount)
	})
	t.Run("one failing definition does not abort the batch", func(t *testing.T) {
		broken := &entity.Achievement{
			ID:              uuid.New(),
			Title:           "broken_def",
			Category:        entity.CategoryVisits,
			Subcategory:     "milestone",
			RequirementType: "count",
			Requirement:     50,
			Tier:            "silver",
			Points:          25,
			MaxCompletions:  1,
			IsActive:        true,
		}
		var upserted *entity.BarberAchievement
		barbersRepo.EXPECT().GetByID(gomock.Any(), barberID).Return(testBarber(barberID), nil)
		achievementsRepo.EXPECT().ListActive(gomock.Any()).Return([]*entity.Achievement{broken, visitsDef}, nil)
		visitsRepo.EXPECT().CountByBarber(gomock.Any(), barberID).Return(0, errors.New("db error"))
		visitsRepo.EXPECT().CountByBarber(gomock.Any(), barberID).Return(120, nil)
		achievementsRepo.EXPECT().GetProgress(gomock.Any(), barberID, visitsDef.ID).Return(nil, nil)
		achievementsRepo.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, progress *entity.BarberAchievement) error {
				upserted = progress
				return nil
			})
		err := serv.UpdateProgress(ctx, barberID)
		assert.NoError(t, err)
		assert.Equal(t, visitsDef.ID, upserted.AchievementID)
	})
	t.Run("unknown category skipped", func(t *testing.T) {
		unknown := &entity.Achievement{
			ID:              uuid.New(),
			Title:           "mystery",
			Category:        entity.AchievementCategory("astrology"),
			RequirementType: "count",
			Requirement:     1,
			MaxCompletions:  1,
			IsActive:        true,
		}
		barbersRepo.EXPECT().GetByID(gomock.Any(), barberID).Return(testBarber(barberID), nil)
		achievementsRepo.EXPECT().ListActive(gomock.Any()).Return([]*entity.Achievement{unknown}, nil)
		err := serv.UpdateProgress(ctx, barberID)
		assert.NoError(t, err)
	})
	t.Run("barber not found", func(t *testing.T) {
		barbersRepo.EXPECT().GetByID(gomock.Any(), barberID).Return(nil, errorvalues.ErrBarberNotFound)
		err := serv.UpdateProgress(ctx, barberID)
		assert.ErrorIs(t, err, errorvalues.ErrBarberNotFound)
	})
}

func TestGetAchievementProgressViews(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	achievementsRepo := mocks.NewMockAchievementsRepositoryI(ctrl)
	barbersRepo := mocks.NewMockBarbersRepositoryI(ctrl)
	visitsRepo := mocks.NewMockVisitsRepositoryI(ctrl)

	serv := service.NewAchievementsService(achievementsRepo, barbersRepo, visitsRepo)
	barberID := uuid.New()
	def := &entity.Achievement{
		ID:              uuid.New(),
		Title:           "century_club",
		Category:        entity.CategoryVisits,
		Subcategory:     "milestone",
		RequirementType: "count",
		Requirement:     100,
		Tier:            "gold",
		Points:          50,
		MaxCompletions:  1,
		IsActive:        true,
	}
	untouched := &entity.Achievement{
		ID:              uuid.New(),
		Title:           "veteran",
		Category:        entity.CategoryTenure,
		Subcategory:     "milestone",
		RequirementType: "months",
		Requirement:     12,
		Tier:            "gold",
		Points:          40,
		MaxCompletions:  1,
		IsActive:        true,
	}
	ctx := context.Background()
	t.Run("stored progress merged with definitions", func(t *testing.T) {
		barbersRepo.EXPECT().GetByID(gomock.Any(), barberID).Return(testBarber(barberID), nil)
		achievementsRepo.EXPECT().ListActive(gomock.Any()).Return([]*entity.Achievement{def, untouched}, nil)
		achievementsRepo.EXPECT().ListProgressByBarber(gomock.Any(), barberID).Return([]entity.BarberAchievement{
			{
				BarberID:      barberID,
				AchievementID: def.ID,
				Progress:      47,
			},
		}, nil)
		views, err := serv.GetProgress(ctx, barberID)
		assert.NoError(t, err)
		assert.Len(t, views, 2)
		assert.Equal(t, 47, views[0].Progress)
		assert.Equal(t, 47, views[0].ProgressPercentage)
		assert.Equal(t, 0, views[1].Progress)
		assert.Equal(t, 0, views[1].ProgressPercentage)
	})
	t.Run("percentage capped at 100", func(t *testing.T) {
		barbersRepo.EXPECT().GetByID(gomock.Any(), barberID).Return(testBarber(barberID), nil)
		achievementsRepo.EXPECT().ListActive(gomock.Any()).Return([]*entity.Achievement{def}, nil)
		achievementsRepo.EXPECT().ListProgressByBarber(gomock.Any(), barberID).Return([]entity.BarberAchievement{
			{
				BarberID:      barberID,
				AchievementID: def.ID,
				Progress:      250,
				IsCompleted:   true,
			},
		}, nil)
		views, err := serv.GetProgress(ctx, barberID)
		assert.NoError(t, err)
		assert.Equal(t, 100, views[0].ProgressPercentage)
		assert.True(t, views[0].IsCompleted)
	})
	t.Run("barber not found", func(t *testing.T) {
		barbersRepo.EXPECT().GetByID(gomock.Any(), barberID).Return(nil, errorvalues.ErrBarberNotFound)
		_, err := serv.GetProgress(ctx, barberID)
		assert.ErrorIs(t, err, errorvalues.ErrBarberNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		barbersRepo.EXPECT().GetByID(gomock.Any(), barberID).Return(testBarber(barberID), nil)
		achievementsRepo.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db error"))
		_, err := serv.GetProgress(ctx, barberID)
		assert.Error(t, err)
	})
}
