package repository

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/fadebook/fadebook/internal/error_values"
	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VisitsRepository struct {
	conn PgConnection
}

func NewVisitsRepo(cfg DBConfig) *VisitsRepository {
	return &VisitsRepository{
		conn: newPool(cfg, "visitsRepo"),
	}
}

func NewVisitsRepoWithConn(conn PgConnection) *VisitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for visitsRepo: " + err.Error())
	}
	return &VisitsRepository{
		conn: conn,
	}
}

func (vr *VisitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var v entity.Visit
	v.ID = id
	row := vr.conn.QueryRow(ctx, `SELECT customer_id, barber_id, services, visit_date, visit_number, created_at
		FROM visits WHERE id = $1;`, id)
	err := row.Scan(&v.CustomerID, &v.BarberID, &v.Services, &v.VisitDate, &v.VisitNumber, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrVisitNotFound
		}
		return nil, errors.New("getting visit by id error: " + err.Error())
	}
	return &v, nil
}

func (vr *VisitsRepository) SetVisitNumber(ctx context.Context, id uuid.UUID, number int) error {
	ct, err := vr.conn.Exec(ctx, `UPDATE visits SET visit_number = $1 WHERE id = $2;`, number, id)
	if err != nil {
		return errors.New("error setting visit number: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrVisitNotFound
	}
	return nil
}

func (vr *VisitsRepository) StampRedemption(ctx context.Context, id uuid.UUID, stamp *RedemptionStamp) error {
	ct, err := vr.conn.Exec(ctx, `UPDATE visits SET reward_redeemed = $1 WHERE id = $2;`, stamp, id)
	if err != nil {
		return errors.New("error stamping redemption on visit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrVisitNotFound
	}
	return nil
}

func (vr *VisitsRepository) CountByBarber(ctx context.Context, barberID uuid.UUID) (int, error) {
	row := vr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM visits WHERE barber_id = $1;`, barberID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting visits: " + err.Error())
	}
	return count, nil
}

func (vr *VisitsRepository) CountByBarberBetween(ctx context.Context, barberID uuid.UUID, from, to time.Time) (int, error) {
	row := vr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM visits WHERE barber_id = $1 AND visit_date >= $2 AND visit_date < $3;`,
		barberID, from, to)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting visits for period: " + err.Error())
	}
	return count, nil
}

func (vr *VisitsRepository) DailyCountsByBarber(ctx context.Context, barberID uuid.UUID, from, to time.Time) ([]DayCount, error) {
	// Days are bucketed at UTC so grouping doesn't depend on the database
	// session timezone.
	rows, err := vr.conn.Query(ctx, `SELECT date_trunc('day', visit_date AT TIME ZONE 'UTC') AS day, COUNT(*) FROM visits
		WHERE barber_id = $1 AND visit_date >= $2 AND visit_date < $3 GROUP BY day ORDER BY day;`,
		barberID, from, to)
	if err != nil {
		return nil, errors.New("getting daily counts error: " + err.Error())
	}
	defer rows.Close()
	result := make([]DayCount, 0)
	for rows.Next() {
		dc := DayCount{}
		err = rows.Scan(&dc.Day, &dc.Count)
		if err != nil {
			return nil, errors.New("daily count row parsing error: " + err.Error())
		}
		result = append(result, dc)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected daily count rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (vr *VisitsRepository) CountDistinctClients(ctx context.Context, barberID uuid.UUID) (int, error) {
	row := vr.conn.QueryRow(ctx, `SELECT COUNT(DISTINCT customer_id) FROM visits WHERE barber_id = $1;`, barberID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting distinct clients: " + err.Error())
	}
	return count, nil
}

func (vr *VisitsRepository) CountDistinctClientsBetween(ctx context.Context, barberID uuid.UUID, from, to time.Time) (int, error) {
	row := vr.conn.QueryRow(ctx, `SELECT COUNT(DISTINCT customer_id) FROM visits WHERE barber_id = $1 AND visit_date >= $2 AND visit_date < $3;`,
		barberID, from, to)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting distinct clients for period: " + err.Error())
	}
	return count, nil
}

func (vr *VisitsRepository) CountDistinctServices(ctx context.Context, barberID uuid.UUID) (int, error) {
	row := vr.conn.QueryRow(ctx, `SELECT COUNT(DISTINCT service) FROM visits, unnest(services) AS service WHERE barber_id = $1;`, barberID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting distinct services: " + err.Error())
	}
	return count, nil
}
