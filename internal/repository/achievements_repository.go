package repository

import (
	"context"
	"errors"
	"log"

	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepo(cfg DBConfig) *AchievementsRepository {
	return &AchievementsRepository{
		conn: newPool(cfg, "achievementsRepo"),
	}
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	return &AchievementsRepository{
		conn: conn,
	}
}

func (ar *AchievementsRepository) ListActive(ctx context.Context) ([]*entity.Achievement, error) {
	achievements := make([]*entity.Achievement, 0)
	rows, err := ar.conn.Query(ctx, `SELECT id, title, category, subcategory, requirement_type, requirement, timeframe,
		min_per_unit, tier, points, is_repeatable, max_completions, is_active FROM achievements WHERE is_active = true;`)
	if err != nil {
		return nil, errors.New("getting active achievements error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		a := entity.Achievement{}
		err = rows.Scan(&a.ID, &a.Title, &a.Category, &a.Subcategory, &a.RequirementType, &a.Requirement, &a.Timeframe,
			&a.MinPerUnit, &a.Tier, &a.Points, &a.IsRepeatable, &a.MaxCompletions, &a.IsActive)
		if err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		achievements = append(achievements, &a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected achievement rows error: " + rows.Err().Error())
	}
	return achievements, nil
}

func (ar *AchievementsRepository) GetProgress(ctx context.Context, barberID, achievementID uuid.UUID) (*entity.BarberAchievement, error) {
	var ba entity.BarberAchievement
	ba.BarberID = barberID
	ba.AchievementID = achievementID
	row := ar.conn.QueryRow(ctx, `SELECT id, progress, is_completed, completed_at, completion_count, current_streak, metadata, updated_at
		FROM barber_achievements WHERE barber_id = $1 AND achievement_id = $2;`, barberID, achievementID)
	err := row.Scan(&ba.ID, &ba.Progress, &ba.IsCompleted, &ba.CompletedAt, &ba.CompletionCount, &ba.CurrentStreak, &ba.Metadata, &ba.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting achievement progress error: " + err.Error())
	}
	return &ba, nil
}

func (ar *AchievementsRepository) UpsertProgress(ctx context.Context, progress *entity.BarberAchievement) error {
	_, err := ar.conn.Exec(ctx, `INSERT INTO barber_achievements (barber_id, achievement_id, progress, is_completed, completed_at, completion_count, current_streak, metadata, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (barber_id, achievement_id) DO UPDATE SET progress = $3, is_completed = $4, completed_at = $5, completion_count = $6, current_streak = $7, metadata = $8, updated_at = NOW();`,
		progress.BarberID,
		progress.AchievementID,
		progress.Progress,
		progress.IsCompleted,
		progress.CompletedAt,
		progress.CompletionCount,
		progress.CurrentStreak,
		progress.Metadata,
	)
	if err != nil {
		return errors.New("upserting achievement progress error: " + err.Error())
	}
	return nil
}

func (ar *AchievementsRepository) ListProgressByBarber(ctx context.Context, barberID uuid.UUID) ([]entity.BarberAchievement, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, barber_id, achievement_id, progress, is_completed, completed_at, completion_count, current_streak, metadata, updated_at
		FROM barber_achievements WHERE barber_id = $1;`, barberID)
	if err != nil {
		return nil, errors.New("getting progress by barber error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.BarberAchievement, 0)
	for rows.Next() {
		ba := entity.BarberAchievement{}
		err = rows.Scan(&ba.ID, &ba.BarberID, &ba.AchievementID, &ba.Progress, &ba.IsCompleted, &ba.CompletedAt,
			&ba.CompletionCount, &ba.CurrentStreak, &ba.Metadata, &ba.UpdatedAt)
		if err != nil {
			return nil, errors.New("barber achievement row parsing error: " + err.Error())
		}
		result = append(result, ba)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected barber achievement rows error: " + rows.Err().Error())
	}
	return result, nil
}
