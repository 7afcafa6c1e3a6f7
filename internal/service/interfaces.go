package service

import (
	"context"
	"time"

	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type AdminServiceI interface {
	// Validates admin's credentials, creates new row in database. Returns admin's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.AdminUser, error)
	// Compares given credentials. If ok, give back admin's data with ID.
	Login(ctx context.Context, name, password string) (*entity.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
}

type CreateRewardRequest struct {
	Name               string   `validate:"required,min=2,max=150"`
	VisitsRequired     int      `validate:"required,min=1"`
	RewardType         string   `validate:"required,oneof=free discount"`
	DiscountPercentage *int     `validate:"omitempty,min=1,max=100"`
	ApplicableServices []string `validate:"omitempty,dive,min=1"`
	MaxRedemptions     *int     `validate:"omitempty,min=1"`
}

// LoyaltyStatusView is the customer-facing progress picture.
type LoyaltyStatusView struct {
	Customer           *entity.Customer `json:"customer"`
	EligibleRewards    []*entity.Reward `json:"eligible_rewards"`
	SelectedReward     *entity.Reward   `json:"selected_reward,omitempty"`
	VisitsToNextReward int              `json:"visits_to_next_reward"`
	ProgressPercentage int              `json:"progress_percentage"`
	CanRedeem          bool             `json:"can_redeem"`
}

type RedeemRequest struct {
	CustomerID uuid.UUID
	RewardID   uuid.UUID
	RedeemedBy string
	VisitID    *uuid.UUID
}

type RedemptionReceipt struct {
	RewardID           uuid.UUID         `json:"reward_id"`
	RewardName         string            `json:"reward_name"`
	RewardType         entity.RewardType `json:"reward_type"`
	DiscountPercentage *int              `json:"discount_percentage,omitempty"`
	FreeServices       []string          `json:"free_services,omitempty"`
	PreviousProgress   int               `json:"previous_progress"`
}

type RedeemResult struct {
	Customer *entity.Customer  `json:"customer"`
	Receipt  RedemptionReceipt `json:"receipt"`
}

type LoyaltyServiceI interface {
	// Returns the customer's counters, eligible rewards and, when a reward
	// is selected, distance to it. Lazily persists milestone_reached.
	GetLoyaltyStatus(ctx context.Context, customerID uuid.UUID) (*LoyaltyStatusView, error)
	// Points the customer at a reward to work toward. Accrued progress
	// still counts.
	SelectReward(ctx context.Context, customerID, rewardID uuid.UUID) (*entity.Customer, error)
	// Bumps the customer's counters for one recorded visit. Must be called
	// exactly once per visit.
	RecordVisitForLoyalty(ctx context.Context, customerID, visitID uuid.UUID) (*entity.Customer, error)
	// Consumes earned eligibility: resets progress, clears selection and
	// produces a receipt.
	RedeemReward(ctx context.Context, req *RedeemRequest) (*RedeemResult, error)
	// Lists active rewards the customer can still work toward.
	GetAvailableRewards(ctx context.Context, customerID uuid.UUID) ([]*entity.Reward, error)
	// Admin corrective: zeroes progress, keeps lifetime counters and history.
	ResetClientLoyalty(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error)
	// Creates a customer reward definition, rejecting invalid ones.
	CreateReward(ctx context.Context, req *CreateRewardRequest) (*entity.Reward, error)
}

type AchievementProgressView struct {
	Achievement        *entity.Achievement `json:"achievement"`
	Progress           int                 `json:"progress"`
	ProgressPercentage int                 `json:"progress_percentage"`
	IsCompleted        bool                `json:"is_completed"`
	CompletedAt        *time.Time          `json:"completed_at,omitempty"`
	CompletionCount    int                 `json:"completion_count"`
	CurrentStreak      int                 `json:"current_streak"`
}

type AchievementsServiceI interface {
	// Recomputes progress for every active achievement definition. A
	// failure on one definition is logged and skipped.
	UpdateProgress(ctx context.Context, barberID uuid.UUID) error
	// Returns definition plus stored progress for every active achievement.
	GetProgress(ctx context.Context, barberID uuid.UUID) ([]AchievementProgressView, error)
}

type BarberRewardProgressView struct {
	Reward             *entity.BarberReward    `json:"reward"`
	Progress           int                     `json:"progress"`
	ProgressPercentage int                     `json:"progress_percentage"`
	TenureDisplay      string                  `json:"tenure_display,omitempty"`
	Status             entity.RedemptionStatus `json:"status,omitempty"`
	EarnedAt           *time.Time              `json:"earned_at,omitempty"`
	RedeemedAt         *time.Time              `json:"redeemed_at,omitempty"`
}

type BarberRewardsServiceI interface {
	// Evaluates active definitions and records at most one earn per
	// (barber, reward) pair, snapshotting progress at that instant.
	UpdateRewardProgress(ctx context.Context, barberID uuid.UUID) error
	// Recomputes progress fresh for display and merges redemption state.
	GetRewardProgress(ctx context.Context, barberID uuid.UUID) ([]BarberRewardProgressView, error)
	// Transitions earned -> redeemed. False means nothing to redeem.
	MarkRedeemed(ctx context.Context, redemptionID, adminID uuid.UUID, notes string) (bool, error)
}

type LeaderboardServiceI interface {
	// Scores active barbers from stored facts, top 50.
	GetLeaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
}
