package repository

import (
	"context"
	"errors"
	"log"

	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/google/uuid"
)

// CustomerRedemptionsRepository is the append-only ledger of customer
// reward redemptions. History lives here, not inside visit records.
type CustomerRedemptionsRepository struct {
	conn PgConnection
}

func NewCustomerRedemptionsRepo(cfg DBConfig) *CustomerRedemptionsRepository {
	return &CustomerRedemptionsRepository{
		conn: newPool(cfg, "customerRedemptionsRepo"),
	}
}

func NewCustomerRedemptionsRepoWithConn(conn PgConnection) *CustomerRedemptionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for customerRedemptionsRepo: " + err.Error())
	}
	return &CustomerRedemptionsRepository{
		conn: conn,
	}
}

func (rr *CustomerRedemptionsRepository) Create(ctx context.Context, redemption *entity.Redemption) (uuid.UUID, error) {
	var id uuid.UUID
	row := rr.conn.QueryRow(ctx, `INSERT INTO customer_redemptions (customer_id, reward_id, visit_id, reward_name, reward_type, discount_percentage, progress_at_redemption, redeemed_by, redeemed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		redemption.CustomerID,
		redemption.RewardID,
		redemption.VisitID,
		redemption.RewardName,
		redemption.RewardType,
		redemption.DiscountPercentage,
		redemption.ProgressAtRedemption,
		redemption.RedeemedBy,
		redemption.RedeemedAt,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating customer redemption error: " + err.Error())
	}
	return id, nil
}

func (rr *CustomerRedemptionsRepository) CountByCustomerAndReward(ctx context.Context, customerID, rewardID uuid.UUID) (int, error) {
	row := rr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM customer_redemptions WHERE customer_id = $1 AND reward_id = $2;`,
		customerID, rewardID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting customer redemptions: " + err.Error())
	}
	return count, nil
}

func (rr *CustomerRedemptionsRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Redemption, error) {
	rows, err := rr.conn.Query(ctx, `SELECT id, customer_id, reward_id, visit_id, reward_name, reward_type, discount_percentage, progress_at_redemption, redeemed_by, redeemed_at
		FROM customer_redemptions WHERE customer_id = $1 ORDER BY redeemed_at DESC;`, customerID)
	if err != nil {
		return nil, errors.New("getting customer redemptions error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Redemption, 0)
	for rows.Next() {
		r := entity.Redemption{}
		err = rows.Scan(&r.ID, &r.CustomerID, &r.RewardID, &r.VisitID, &r.RewardName, &r.RewardType,
			&r.DiscountPercentage, &r.ProgressAtRedemption, &r.RedeemedBy, &r.RedeemedAt)
		if err != nil {
			return nil, errors.New("customer redemption row parsing error: " + err.Error())
		}
		result = append(result, r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected customer redemption rows error: " + rows.Err().Error())
	}
	return result, nil
}
