package repository

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/fadebook/fadebook/internal/error_values"
	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type BarberRewardsRepository struct {
	conn PgConnection
}

func NewBarberRewardsRepo(cfg DBConfig) *BarberRewardsRepository {
	return &BarberRewardsRepository{
		conn: newPool(cfg, "barberRewardsRepo"),
	}
}

func NewBarberRewardsRepoWithConn(conn PgConnection) *BarberRewardsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for barberRewardsRepo: " + err.Error())
	}
	return &BarberRewardsRepository{
		conn: conn,
	}
}

func (br *BarberRewardsRepository) ListActive(ctx context.Context) ([]*entity.BarberReward, error) {
	rewards := make([]*entity.BarberReward, 0)
	rows, err := br.conn.Query(ctx, `SELECT id, title, reward_type, requirement_type, requirement_value, priority, is_active
		FROM barber_rewards WHERE is_active = true ORDER BY priority DESC;`)
	if err != nil {
		return nil, errors.New("getting active barber rewards error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		r := entity.BarberReward{}
		err = rows.Scan(&r.ID, &r.Title, &r.RewardType, &r.RequirementType, &r.RequirementValue, &r.Priority, &r.IsActive)
		if err != nil {
			return nil, errors.New("barber reward row parsing error: " + err.Error())
		}
		rewards = append(rewards, &r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected barber reward rows error: " + rows.Err().Error())
	}
	return rewards, nil
}

func (br *BarberRewardsRepository) GetRedemption(ctx context.Context, barberID, rewardID uuid.UUID) (*entity.BarberRewardRedemption, error) {
	var r entity.BarberRewardRedemption
	r.BarberID = barberID
	r.RewardID = rewardID
	row := br.conn.QueryRow(ctx, `SELECT id, status, earned_at, redeemed_at, redeemed_by, notes, progress_at_earning
		FROM barber_reward_redemptions WHERE barber_id = $1 AND reward_id = $2;`, barberID, rewardID)
	err := row.Scan(&r.ID, &r.Status, &r.EarnedAt, &r.RedeemedAt, &r.RedeemedBy, &r.Notes, &r.ProgressAtEarning)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting barber reward redemption error: " + err.Error())
	}
	return &r, nil
}

func (br *BarberRewardsRepository) CreateRedemption(ctx context.Context, redemption *entity.BarberRewardRedemption) (uuid.UUID, error) {
	var id uuid.UUID
	row := br.conn.QueryRow(ctx, `INSERT INTO barber_reward_redemptions (barber_id, reward_id, status, earned_at, progress_at_earning)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		redemption.BarberID,
		redemption.RewardID,
		redemption.Status,
		redemption.EarnedAt,
		redemption.ProgressAtEarning,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on (barber_id, reward_id)
			case "23505":
				return uuid.UUID{}, errorvalues.ErrRedemptionExists
			}
		}
		return uuid.UUID{}, errors.New("creating barber reward redemption error: " + err.Error())
	}
	return id, nil
}

func (br *BarberRewardsRepository) GetRedemptionByID(ctx context.Context, id uuid.UUID) (*entity.BarberRewardRedemption, error) {
	var r entity.BarberRewardRedemption
	r.ID = id
	row := br.conn.QueryRow(ctx, `SELECT barber_id, reward_id, status, earned_at, redeemed_at, redeemed_by, notes, progress_at_earning
		FROM barber_reward_redemptions WHERE id = $1;`, id)
	err := row.Scan(&r.BarberID, &r.RewardID, &r.Status, &r.EarnedAt, &r.RedeemedAt, &r.RedeemedBy, &r.Notes, &r.ProgressAtEarning)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRedemptionNotFound
		}
		return nil, errors.New("getting redemption by id error: " + err.Error())
	}
	return &r, nil
}

func (br *BarberRewardsRepository) ListRedemptionsByBarber(ctx context.Context, barberID uuid.UUID) ([]entity.BarberRewardRedemption, error) {
	rows, err := br.conn.Query(ctx, `SELECT id, barber_id, reward_id, status, earned_at, redeemed_at, redeemed_by, notes, progress_at_earning
		FROM barber_reward_redemptions WHERE barber_id = $1;`, barberID)
	if err != nil {
		return nil, errors.New("getting redemptions by barber error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.BarberRewardRedemption, 0)
	for rows.Next() {
		r := entity.BarberRewardRedemption{}
		err = rows.Scan(&r.ID, &r.BarberID, &r.RewardID, &r.Status, &r.EarnedAt, &r.RedeemedAt, &r.RedeemedBy, &r.Notes, &r.ProgressAtEarning)
		if err != nil {
			return nil, errors.New("redemption row parsing error: " + err.Error())
		}
		result = append(result, r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected redemption rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (br *BarberRewardsRepository) MarkRedeemed(ctx context.Context, id, adminID uuid.UUID, notes string) (bool, error) {
	ct, err := br.conn.Exec(ctx, `UPDATE barber_reward_redemptions SET status = 'redeemed', redeemed_at = NOW(), redeemed_by = $1, notes = $2
		WHERE id = $3 AND status = 'earned';`, adminID, notes, id)
	if err != nil {
		return false, errors.New("error marking redemption redeemed: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}
