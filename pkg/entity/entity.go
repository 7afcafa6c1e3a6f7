package entity

import (
	"time"

	"github.com/google/uuid"
)

type LoyaltyStatus string

const (
	LoyaltyNew              LoyaltyStatus = "new"
	LoyaltyActive           LoyaltyStatus = "active"
	LoyaltyMilestoneReached LoyaltyStatus = "milestone_reached"
	LoyaltyInactive         LoyaltyStatus = "inactive"
)

type RewardType string

const (
	RewardFree     RewardType = "free"
	RewardDiscount RewardType = "discount"
)

type AchievementCategory string

const (
	CategoryTenure      AchievementCategory = "tenure"
	CategoryVisits      AchievementCategory = "visits"
	CategoryClients     AchievementCategory = "clients"
	CategoryConsistency AchievementCategory = "consistency"
	CategoryQuality     AchievementCategory = "quality"
)

type BarberRewardType string

const (
	BarberRewardMonetary    BarberRewardType = "monetary"
	BarberRewardGift        BarberRewardType = "gift"
	BarberRewardTimeOff     BarberRewardType = "time_off"
	BarberRewardRecognition BarberRewardType = "recognition"
)

type BarberRequirementType string

const (
	RequireVisits          BarberRequirementType = "visits"
	RequireClients         BarberRequirementType = "clients"
	RequireMonthsWorked    BarberRequirementType = "months_worked"
	RequireClientRetention BarberRequirementType = "client_retention"
	RequireCustom          BarberRequirementType = "custom"
)

type RedemptionStatus string

const (
	RedemptionEarned   RedemptionStatus = "earned"
	RedemptionRedeemed RedemptionStatus = "redeemed"
)

type AdminUser struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Customer struct {
	ID                    uuid.UUID     `json:"id"`
	Name                  string        `json:"name"`
	Phone                 string        `json:"phone"`
	VisitCount            int           `json:"visit_count"`
	TotalLifetimeVisits   int           `json:"total_lifetime_visits"`
	CurrentProgressVisits int           `json:"current_progress_visits"`
	SelectedRewardID      *uuid.UUID    `json:"selected_reward_id,omitempty"`
	SelectionBaseline     int           `json:"selection_baseline"`
	RewardsEarned         int           `json:"rewards_earned"`
	RewardsRedeemed       int           `json:"rewards_redeemed"`
	LoyaltyStatus         LoyaltyStatus `json:"loyalty_status"`
	LoyaltyJoinDate       *time.Time    `json:"loyalty_join_date,omitempty"`
	LastVisit             *time.Time    `json:"last_visit,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

type Reward struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	VisitsRequired     int        `json:"visits_required"`
	RewardType         RewardType `json:"reward_type"`
	DiscountPercentage *int       `json:"discount_percentage,omitempty"`
	ApplicableServices []string   `json:"applicable_services"`
	MaxRedemptions     *int       `json:"max_redemptions,omitempty"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type Visit struct {
	ID          uuid.UUID  `json:"id"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	BarberID    uuid.UUID  `json:"barber_id"`
	Services    []string   `json:"services"`
	VisitDate   time.Time  `json:"visit_date"`
	VisitNumber int        `json:"visit_number"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Redemption is the customer-side ledger row. One row per successful
// redeemReward call, kept independent of the visit record's lifecycle.
type Redemption struct {
	ID                   uuid.UUID  `json:"id"`
	CustomerID           uuid.UUID  `json:"customer_id"`
	RewardID             uuid.UUID  `json:"reward_id"`
	VisitID              *uuid.UUID `json:"visit_id,omitempty"`
	RewardName           string     `json:"reward_name"`
	RewardType           RewardType `json:"reward_type"`
	DiscountPercentage   *int       `json:"discount_percentage,omitempty"`
	ProgressAtRedemption int        `json:"progress_at_redemption"`
	RedeemedBy           string     `json:"redeemed_by"`
	RedeemedAt           time.Time  `json:"redeemed_at"`
}

type Barber struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	JoinDate      time.Time `json:"join_date"`
	RetentionRate float64   `json:"retention_rate"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type Achievement struct {
	ID              uuid.UUID           `json:"id"`
	Title           string              `json:"title"`
	Category        AchievementCategory `json:"category"`
	Subcategory     string              `json:"subcategory"`
	RequirementType string              `json:"requirement_type"`
	Requirement     int                 `json:"requirement"`
	Timeframe       string              `json:"timeframe,omitempty"`
	MinPerUnit      int                 `json:"min_per_unit,omitempty"`
	Tier            string              `json:"tier"`
	Points          int                 `json:"points"`
	IsRepeatable    bool                `json:"is_repeatable"`
	MaxCompletions  int                 `json:"max_completions"`
	IsActive        bool                `json:"is_active"`
}

type BarberAchievement struct {
	ID              uuid.UUID      `json:"id"`
	BarberID        uuid.UUID      `json:"barber_id"`
	AchievementID   uuid.UUID      `json:"achievement_id"`
	Progress        int            `json:"progress"`
	IsCompleted     bool           `json:"is_completed"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	CompletionCount int            `json:"completion_count"`
	CurrentStreak   int            `json:"current_streak"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type BarberReward struct {
	ID               uuid.UUID             `json:"id"`
	Title            string                `json:"title"`
	RewardType       BarberRewardType      `json:"reward_type"`
	RequirementType  BarberRequirementType `json:"requirement_type"`
	RequirementValue int                   `json:"requirement_value"`
	Priority         int                   `json:"priority"`
	IsActive         bool                  `json:"is_active"`
}

// ProgressSnapshot freezes a barber's facts at the moment a reward is
// earned. It is the only snapshotted state in the engine.
type ProgressSnapshot struct {
	Visits        int     `json:"visits"`
	UniqueClients int     `json:"unique_clients"`
	MonthsWorked  int     `json:"months_worked"`
	RetentionRate float64 `json:"retention_rate"`
}

type BarberRewardRedemption struct {
	ID                uuid.UUID        `json:"id"`
	BarberID          uuid.UUID        `json:"barber_id"`
	RewardID          uuid.UUID        `json:"reward_id"`
	Status            RedemptionStatus `json:"status"`
	EarnedAt          time.Time        `json:"earned_at"`
	RedeemedAt        *time.Time       `json:"redeemed_at,omitempty"`
	RedeemedBy        *uuid.UUID       `json:"redeemed_by,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	ProgressAtEarning ProgressSnapshot `json:"progress_at_earning"`
}

// BarberStats are the aggregated facts the store computes per barber.
// Grouping happens in SQL so the engine never loads visit rows.
type BarberStats struct {
	BarberID      uuid.UUID `json:"barber_id"`
	Name          string    `json:"name"`
	JoinDate      time.Time `json:"join_date"`
	TotalVisits   int       `json:"total_visits"`
	UniqueClients int       `json:"unique_clients"`
	RetentionRate float64   `json:"retention_rate"`
	EarnedRewards int       `json:"earned_rewards"`
}

type LeaderboardEntry struct {
	BarberID      uuid.UUID `json:"barber_id"`
	Name          string    `json:"name"`
	Rank          int       `json:"rank"`
	Score         float64   `json:"score"`
	TotalVisits   int       `json:"total_visits"`
	UniqueClients int       `json:"unique_clients"`
	MonthsWorked  int       `json:"months_worked"`
	RetentionRate float64   `json:"retention_rate"`
	EarnedRewards int       `json:"earned_rewards"`
	Badges        []string  `json:"badges"`
}
