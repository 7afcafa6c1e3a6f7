package repository

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/fadebook/fadebook/internal/error_values"
	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RewardsRepository struct {
	conn PgConnection
}

func NewRewardsRepo(cfg DBConfig) *RewardsRepository {
	return &RewardsRepository{
		conn: newPool(cfg, "rewardsRepo"),
	}
}

func NewRewardsRepoWithConn(conn PgConnection) *RewardsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for rewardsRepo: " + err.Error())
	}
	return &RewardsRepository{
		conn: conn,
	}
}

func (rr *RewardsRepository) Create(ctx context.Context, reward *entity.Reward) (uuid.UUID, error) {
	var id uuid.UUID
	row := rr.conn.QueryRow(ctx, `INSERT INTO rewards (name, visits_required, reward_type, discount_percentage, applicable_services, max_redemptions, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		reward.Name,
		reward.VisitsRequired,
		reward.RewardType,
		reward.DiscountPercentage,
		reward.ApplicableServices,
		reward.MaxRedemptions,
		reward.IsActive,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating reward db error: " + err.Error())
	}
	return id, nil
}

func (rr *RewardsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	var r entity.Reward
	r.ID = id
	row := rr.conn.QueryRow(ctx, `SELECT name, visits_required, reward_type, discount_percentage, applicable_services,
		max_redemptions, is_active, created_at, updated_at FROM rewards WHERE id = $1;`, id)
	err := row.Scan(&r.Name, &r.VisitsRequired, &r.RewardType, &r.DiscountPercentage, &r.ApplicableServices,
		&r.MaxRedemptions, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRewardNotFound
		}
		return nil, errors.New("getting reward by id error: " + err.Error())
	}
	return &r, nil
}

func (rr *RewardsRepository) GetActive(ctx context.Context) ([]*entity.Reward, error) {
	rewards := make([]*entity.Reward, 0)
	rows, err := rr.conn.Query(ctx, `SELECT id, name, visits_required, reward_type, discount_percentage, applicable_services,
		max_redemptions, is_active, created_at, updated_at FROM rewards WHERE is_active = true ORDER BY visits_required ASC;`)
	if err != nil {
		return nil, errors.New("getting active rewards error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		r := entity.Reward{}
		err = rows.Scan(&r.ID, &r.Name, &r.VisitsRequired, &r.RewardType, &r.DiscountPercentage, &r.ApplicableServices,
			&r.MaxRedemptions, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, errors.New("reward row parsing error: " + err.Error())
		}
		rewards = append(rewards, &r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected reward rows error: " + rows.Err().Error())
	}
	return rewards, nil
}
