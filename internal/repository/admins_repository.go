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

type AdminsRepository struct {
	conn PgConnection
}

func NewAdminsRepo(cfg DBConfig) *AdminsRepository {
	return &AdminsRepository{
		conn: newPool(cfg, "adminsRepo"),
	}
}

func NewAdminsRepoWithConn(conn PgConnection) *AdminsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for adminsRepo: " + err.Error())
	}
	return &AdminsRepository{
		conn: conn,
	}
}

func (ar *AdminsRepository) Create(ctx context.Context, user *entity.AdminUser) error {
	_, err := ar.conn.Exec(ctx, `INSERT INTO admin_users (name, password_hash) VALUES ($1, $2);`,
		user.Name,
		user.PasswordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating admin db error: " + err.Error())
	}
	return nil
}

func (ar *AdminsRepository) FindByName(ctx context.Context, name string) (*entity.AdminUser, error) {
	var user entity.AdminUser
	user.Name = name
	row := ar.conn.QueryRow(ctx, `SELECT id, password_hash FROM admin_users WHERE name = $1;`, name)
	if err := row.Scan(&user.ID, &user.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("getting admin by name error: " + err.Error())
	}
	return &user, nil
}

func (ar *AdminsRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.AdminUser, error) {
	var user entity.AdminUser
	user.ID = uid
	row := ar.conn.QueryRow(ctx, `SELECT name, password_hash FROM admin_users WHERE id = $1;`, uid)
	if err := row.Scan(&user.Name, &user.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("getting admin by id error: " + err.Error())
	}
	return &user, nil
}
