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

type CustomersRepository struct {
	conn PgConnection
}

func NewCustomersRepo(cfg DBConfig) *CustomersRepository {
	return &CustomersRepository{
		conn: newPool(cfg, "customersRepo"),
	}
}

func NewCustomersRepoWithConn(conn PgConnection) *CustomersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for customersRepo: " + err.Error())
	}
	return &CustomersRepository{
		conn: conn,
	}
}

func (cr *CustomersRepository) Create(ctx context.Context, customer *entity.Customer) (uuid.UUID, error) {
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx, `INSERT INTO customers (name, phone, loyalty_status) VALUES ($1, $2, 'new') RETURNING id;`,
		customer.Name,
		customer.Phone,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrCustomerExists
			}
		}
		return uuid.UUID{}, errors.New("creating customer db error: " + err.Error())
	}
	return id, nil
}

func (cr *CustomersRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var c entity.Customer
	c.ID = id
	row := cr.conn.QueryRow(ctx, `SELECT name, phone, visit_count, total_lifetime_visits, current_progress_visits,
		selected_reward_id, selection_baseline, rewards_earned, rewards_redeemed, loyalty_status,
		loyalty_join_date, last_visit, created_at, updated_at
		FROM customers WHERE id = $1;`, id)
	err := row.Scan(&c.Name, &c.Phone, &c.VisitCount, &c.TotalLifetimeVisits, &c.CurrentProgressVisits,
		&c.SelectedRewardID, &c.SelectionBaseline, &c.RewardsEarned, &c.RewardsRedeemed, &c.LoyaltyStatus,
		&c.LoyaltyJoinDate, &c.LastVisit, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCustomerNotFound
		}
		return nil, errors.New("getting customer by id error: " + err.Error())
	}
	return &c, nil
}

func (cr *CustomersRepository) Update(ctx context.Context, customer *entity.Customer) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE customers SET visit_count = $1, total_lifetime_visits = $2,
		current_progress_visits = $3, selected_reward_id = $4, selection_baseline = $5,
		rewards_earned = $6, rewards_redeemed = $7, loyalty_status = $8, loyalty_join_date = $9,
		last_visit = $10, updated_at = NOW() WHERE id = $11;`,
		customer.VisitCount,
		customer.TotalLifetimeVisits,
		customer.CurrentProgressVisits,
		customer.SelectedRewardID,
		customer.SelectionBaseline,
		customer.RewardsEarned,
		customer.RewardsRedeemed,
		customer.LoyaltyStatus,
		customer.LoyaltyJoinDate,
		customer.LastVisit,
		customer.ID,
	)
	if err != nil {
		return errors.New("error updating customer: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCustomerNotFound
	}
	return nil
}
