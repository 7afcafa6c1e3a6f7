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

type BarbersRepository struct {
	conn PgConnection
}

func NewBarbersRepo(cfg DBConfig) *BarbersRepository {
	return &BarbersRepository{
		conn: newPool(cfg, "barbersRepo"),
	}
}

func NewBarbersRepoWithConn(conn PgConnection) *BarbersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for barbersRepo: " + err.Error())
	}
	return &BarbersRepository{
		conn: conn,
	}
}

func (br *BarbersRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Barber, error) {
	var b entity.Barber
	b.ID = id
	row := br.conn.QueryRow(ctx, `SELECT name, join_date, retention_rate, is_active, created_at FROM barbers WHERE id = $1;`, id)
	err := row.Scan(&b.Name, &b.JoinDate, &b.RetentionRate, &b.IsActive, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBarberNotFound
		}
		return nil, errors.New("getting barber by id error: " + err.Error())
	}
	return &b, nil
}

func (br *BarbersRepository) ListActive(ctx context.Context) ([]*entity.Barber, error) {
	barbers := make([]*entity.Barber, 0)
	rows, err := br.conn.Query(ctx, `SELECT id, name, join_date, retention_rate, is_active, created_at FROM barbers WHERE is_active = true;`)
	if err != nil {
		return nil, errors.New("getting active barbers error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		b := entity.Barber{}
		err = rows.Scan(&b.ID, &b.Name, &b.JoinDate, &b.RetentionRate, &b.IsActive, &b.CreatedAt)
		if err != nil {
			return nil, errors.New("barber row parsing error: " + err.Error())
		}
		barbers = append(barbers, &b)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected barber rows error: " + rows.Err().Error())
	}
	return barbers, nil
}

const statsQuery = `SELECT b.id, b.name, b.join_date, b.retention_rate,
	COUNT(v.id) AS total_visits,
	COUNT(DISTINCT v.customer_id) AS unique_clients,
	(SELECT COUNT(*) FROM barber_reward_redemptions r WHERE r.barber_id = b.id) AS earned_rewards
	FROM barbers b
	LEFT JOIN visits v ON v.barber_id = b.id
	WHERE b.is_active = true
	GROUP BY b.id, b.name, b.join_date, b.retention_rate`

func (br *BarbersRepository) GetStats(ctx context.Context) ([]entity.BarberStats, error) {
	rows, err := br.conn.Query(ctx, statsQuery+`;`)
	if err != nil {
		return nil, errors.New("getting barber stats error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.BarberStats, 0)
	for rows.Next() {
		s := entity.BarberStats{}
		err = rows.Scan(&s.BarberID, &s.Name, &s.JoinDate, &s.RetentionRate, &s.TotalVisits, &s.UniqueClients, &s.EarnedRewards)
		if err != nil {
			return nil, errors.New("barber stats row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected barber stats rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (br *BarbersRepository) GetStatsByID(ctx context.Context, barberID uuid.UUID) (*entity.BarberStats, error) {
	var s entity.BarberStats
	row := br.conn.QueryRow(ctx, statsQuery+` HAVING b.id = $1;`, barberID)
	err := row.Scan(&s.BarberID, &s.Name, &s.JoinDate, &s.RetentionRate, &s.TotalVisits, &s.UniqueClients, &s.EarnedRewards)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBarberNotFound
		}
		return nil, errors.New("getting barber stats by id error: " + err.Error())
	}
	return &s, nil
}
