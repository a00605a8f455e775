package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/panic_alert_system/internal/models"
	"github.com/shenikar/panic_alert_system/internal/service"
)

// updateStatusQuery: $3 включает однократную запись response_time и responded_by,
// $6 - ожидаемый updated_at для compare-and-swap
const updateStatusQuery = `
		UPDATE panic_alerts SET
			alert_status = $1,
			notes = COALESCE($2::text, notes),
			response_time = CASE WHEN $3::boolean THEN COALESCE(response_time, NOW()) ELSE response_time END,
			responded_by = CASE WHEN $3::boolean THEN COALESCE(responded_by, $4::uuid) ELSE responded_by END,
			updated_at = NOW()
		WHERE id = $5
			AND ($6::timestamptz IS NULL OR updated_at = $6::timestamptz)
		RETURNING` + alertColumns + `;
	`

type PanicAlertRepository struct {
	db *pgxpool.Pool
}

func NewPanicAlertRepository(db *pgxpool.Pool) service.PanicAlertRepository {
	return &PanicAlertRepository{db: db}
}

// Create сохраняет новую тревогу. id, created_at и updated_at генерирует база
func (r *PanicAlertRepository) Create(ctx context.Context, alert *models.PanicAlert) error {
	query := `
		INSERT INTO panic_alerts (user_id, location_latitude, location_longitude, location_address, alert_status, district_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.UserID,
		alert.LocationLatitude,
		alert.LocationLongitude,
		alert.LocationAddress,
		alert.AlertStatus,
		alert.DistrictID,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create panic alert: %w", err)
	}
	return nil
}

// GetByID возвращает тревогу по UUID
func (r *PanicAlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PanicAlert, error) {
	query := `SELECT` + alertColumns + `
		FROM panic_alerts
		WHERE id = $1;
	`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("panic alert with id %s: %w", id, models.ErrAlertNotFound)
		}
		return nil, fmt.Errorf("failed to get panic alert by id: %w", err)
	}
	return alert, nil
}

// Query выполняет выборку по фильтру админки или инбокса
func (r *PanicAlertRepository) Query(ctx context.Context, filter models.AlertFilter) ([]*models.PanicAlert, error) {
	query, args := BuildAlertQuery(filter, time.Now())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query panic alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.PanicAlert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan panic alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}

// UpdateStatus меняет статус и заметки. response_time и responded_by
// пишутся только один раз, повторные вызовы их не перезаписывают.
func (r *PanicAlertRepository) UpdateStatus(ctx context.Context, upd models.StatusUpdate) (*models.PanicAlert, error) {
	alert, err := scanAlert(r.db.QueryRow(ctx, updateStatusQuery,
		upd.Status,
		upd.Notes,
		upd.SetResponse,
		upd.OperatorID,
		upd.AlertID,
		upd.ExpectedUpdatedAt,
	))
	if err == nil {
		return alert, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to update panic alert status: %w", err)
	}

	// Ни одна строка не обновилась: либо тревоги нет, либо ее уже изменил другой оператор
	if upd.ExpectedUpdatedAt != nil {
		if _, getErr := r.GetByID(ctx, upd.AlertID); getErr == nil {
			return nil, fmt.Errorf("panic alert %s was modified concurrently: %w", upd.AlertID, models.ErrConflict)
		}
	}
	return nil, fmt.Errorf("panic alert with id %s not found for update: %w", upd.AlertID, models.ErrAlertNotFound)
}

// SetAddress дописывает адрес после обратного геокодирования, если его еще нет
func (r *PanicAlertRepository) SetAddress(ctx context.Context, id uuid.UUID, address string) error {
	query := `
		UPDATE panic_alerts SET
			location_address = $1,
			updated_at = NOW()
		WHERE id = $2 AND location_address IS NULL;
	`
	if _, err := r.db.Exec(ctx, query, address, id); err != nil {
		return fmt.Errorf("failed to set panic alert address: %w", err)
	}
	return nil
}

func scanAlert(row pgx.Row) (*models.PanicAlert, error) {
	alert := &models.PanicAlert{}
	err := row.Scan(
		&alert.ID,
		&alert.UserID,
		&alert.LocationLatitude,
		&alert.LocationLongitude,
		&alert.LocationAddress,
		&alert.AlertStatus,
		&alert.ResponseTime,
		&alert.RespondedBy,
		&alert.Notes,
		&alert.DistrictID,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}
