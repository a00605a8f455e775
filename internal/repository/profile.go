package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/panic_alert_system/internal/models"
	"github.com/shenikar/panic_alert_system/internal/service"
)

const profileColumns = `
			id,
			full_name,
			role,
			district_id,
			telegram_chat_id,
			language`

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) service.ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByID возвращает профиль по UUID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `SELECT` + profileColumns + `
		FROM profiles
		WHERE id = $1;
	`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}
	return profile, nil
}

// GetByIDs возвращает профили пачкой, отсутствующие id просто пропускаются
func (r *ProfileRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Profile, error) {
	result := make(map[uuid.UUID]*models.Profile, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT` + profileColumns + `
		FROM profiles
		WHERE id = ANY($1);
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		result[profile.ID] = profile
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return result, nil
}

// ListResponders возвращает операторов района. Для тревоги без района
// оповещаются только глобальные админы.
func (r *ProfileRepository) ListResponders(ctx context.Context, districtID *uuid.UUID) ([]*models.Profile, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if districtID == nil {
		query := `SELECT` + profileColumns + `
			FROM profiles
			WHERE role = $1 AND district_id IS NULL;
		`
		rows, err = r.db.Query(ctx, query, models.RoleAdmin)
	} else {
		query := `SELECT` + profileColumns + `
			FROM profiles
			WHERE role = ANY($1) AND district_id = $2;
		`
		rows, err = r.db.Query(ctx, query, models.ResponderRoles, *districtID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list responders: %w", err)
	}
	defer rows.Close()

	responders := make([]*models.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		responders = append(responders, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return responders, nil
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	profile := &models.Profile{}
	err := row.Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Role,
		&profile.DistrictID,
		&profile.TelegramChatID,
		&profile.Language,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
