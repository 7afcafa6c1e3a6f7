package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type AdminsRepositoryI interface {
	// Creates new admin account in database
	Create(ctx context.Context, user *entity.AdminUser) error
	// Looks up admin by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.AdminUser, error)
	// Looks up admin by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.AdminUser, error)
}

type CustomersRepositoryI interface {
	// Creates new customer with loyalty status "new"
	Create(ctx context.Context, customer *entity.Customer) (uuid.UUID, error)
	// Searches customer with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// Writes back the customer's loyalty counters, selection and status
	Update(ctx context.Context, customer *entity.Customer) error
}

type RewardsRepositoryI interface {
	// Creates new customer reward definition
	Create(ctx context.Context, reward *entity.Reward) (uuid.UUID, error)
	// Searches reward with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error)
	// Lists active rewards ordered ascending by visits required
	GetActive(ctx context.Context) ([]*entity.Reward, error)
}

// RedemptionStamp is the metadata attached to a visit when a customer
// reward is consumed against it.
type RedemptionStamp struct {
	RewardID           uuid.UUID `json:"reward_id"`
	RewardName         string    `json:"reward_name"`
	RewardType         string    `json:"reward_type"`
	DiscountPercentage *int      `json:"discount_percentage,omitempty"`
	RedeemedBy         string    `json:"redeemed_by"`
	RedeemedAt         time.Time `json:"redeemed_at"`
}

// DayCount is a per-day visit count produced by a grouped query.
type DayCount struct {
	Day   time.Time
	Count int
}

type VisitsRepositoryI interface {
	// Searches visit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)
	// Back-fills the all-time visit number on a visit record
	SetVisitNumber(ctx context.Context, id uuid.UUID, number int) error
	// Attaches reward redemption metadata to a visit
	StampRedemption(ctx context.Context, id uuid.UUID, stamp *RedemptionStamp) error
	// Returns all-time visit count for barber
	CountByBarber(ctx context.Context, barberID uuid.UUID) (int, error)
	// Returns visit count for barber within [from, to)
	CountByBarberBetween(ctx context.Context, barberID uuid.UUID, from, to time.Time) (int, error)
	// Returns per-day visit counts for barber within [from, to)
	DailyCountsByBarber(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]DayCount, error)
	// Returns count of distinct customers served by barber
	CountDistinctClients(ctx context.Context, barberID uuid.UUID) (int, error)
	// Returns count of distinct customers served by barber within [from, to)
	CountDistinctClientsBetween(ctx context.Context, barberID uuid.UUID, from, to time.Time) (int, error)
	// Returns count of distinct services ever performed by barber
	CountDistinctServices(ctx context.Context, barberID uuid.UUID) (int, error)
}

type CustomerRedemptionsRepositoryI interface {
	// Appends a redemption to the customer-side ledger
	Create(ctx context.Context, redemption *entity.Redemption) (uuid.UUID, error)
	// Counts how many times customer already redeemed reward
	CountByCustomerAndReward(ctx context.Context, customerID, rewardID uuid.UUID) (int, error)
	// Lists customer's redemption history, newest first
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Redemption, error)
}

type BarbersRepositoryI interface {
	// Searches barber with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Barber, error)
	// Lists active barbers
	ListActive(ctx context.Context) ([]*entity.Barber, error)
	// Returns aggregated facts for every active barber. Grouping runs in
	// SQL so no visit rows are loaded
	GetStats(ctx context.Context) ([]entity.BarberStats, error)
	// Returns aggregated facts for one barber
	GetStatsByID(ctx context.Context, barberID uuid.UUID) (*entity.BarberStats, error)
}

type AchievementsRepositoryI interface {
	// Lists active achievement definitions
	ListActive(ctx context.Context) ([]*entity.Achievement, error)
	// Returns stored progress for (barber, achievement), nil when none yet
	GetProgress(ctx context.Context, barberID, achievementID uuid.UUID) (*entity.BarberAchievement, error)
	// Inserts or updates the progress row for (barber, achievement)
	UpsertProgress(ctx context.Context, progress *entity.BarberAchievement) error
	// Lists all stored progress rows for barber
	ListProgressByBarber(ctx context.Context, barberID uuid.UUID) ([]entity.BarberAchievement, error)
}

type BarberRewardsRepositoryI interface {
	// Lists active staff reward definitions ordered by priority
	ListActive(ctx context.Context) ([]*entity.BarberReward, error)
	// Returns the redemption record for (barber, reward), nil when none
	GetRedemption(ctx context.Context, barberID, rewardID uuid.UUID) (*entity.BarberRewardRedemption, error)
	// Creates the single earn record for (barber, reward)
	CreateRedemption(ctx context.Context, redemption *entity.BarberRewardRedemption) (uuid.UUID, error)
	// Searches redemption record with given id
	GetRedemptionByID(ctx context.Context, id uuid.UUID) (*entity.BarberRewardRedemption, error)
	// Lists redemption records for barber
	ListRedemptionsByBarber(ctx context.Context, barberID uuid.UUID) ([]entity.BarberRewardRedemption, error)
	// Transitions an earned record to redeemed. Reports false when there
	// was nothing to transition
	MarkRedeemed(ctx context.Context, id, adminID uuid.UUID, notes string) (bool, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
