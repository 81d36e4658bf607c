package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
	"github.com/leavehq/leave_management_app/internal/models"
	"github.com/leavehq/leave_management_app/internal/utils/mapping"
)

const holidayColumns = `holiday_id, holiday_date, name, description,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxHolidayRepository struct {
	BaseRepository
}

func newPgxHolidayRepository(db *pgxpool.Pool) portsrepo.HolidayRepositoryFacade {
	return &PgxHolidayRepository{BaseRepository{Pool: db}}
}

// Ensure PgxHolidayRepository implements portsrepo.HolidayRepositoryFacade
var _ portsrepo.HolidayRepositoryFacade = (*PgxHolidayRepository)(nil)

func scanHolidayRow(row pgx.Row) (models.Holiday, error) {
	var m models.Holiday
	err := row.Scan(
		&m.HolidayID,
		&m.HolidayDate,
		&m.Name,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxHolidayRepository) SaveHoliday(ctx context.Context, holiday domain.Holiday) error {
	m := mapping.ToModelHoliday(holiday)
	query := `
		INSERT INTO holidays (holiday_id, holiday_date, name, description,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.HolidayID,
		m.HolidayDate,
		m.Name,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save holiday: %w", err)
	}
	return nil
}

func (r *PgxHolidayRepository) FindHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE holiday_id = $1;`
	m, err := scanHolidayRow(r.Pool.QueryRow(ctx, query, holidayID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find holiday by ID %s: %w", holidayID, err)
	}
	d := mapping.ToDomainHoliday(m)
	return &d, nil
}

func (r *PgxHolidayRepository) FindHolidays(ctx context.Context) ([]domain.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays ORDER BY holiday_date ASC;`
	return r.queryHolidays(ctx, query)
}

func (r *PgxHolidayRepository) FindHolidaysInRange(ctx context.Context, start, end time.Time) ([]domain.Holiday, error) {
	query := `SELECT ` + holidayColumns + `
		FROM holidays
		WHERE holiday_date >= $1 AND holiday_date <= $2
		ORDER BY holiday_date ASC;`
	return r.queryHolidays(ctx, query, start, end)
}

func (r *PgxHolidayRepository) queryHolidays(ctx context.Context, query string, args ...interface{}) ([]domain.Holiday, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var ms []models.Holiday
	for rows.Next() {
		m, err := scanHolidayRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holiday rows: %w", err)
	}
	return mapping.ToDomainHolidaySlice(ms), nil
}

func (r *PgxHolidayRepository) UpdateHoliday(ctx context.Context, holiday domain.Holiday) error {
	m := mapping.ToModelHoliday(holiday)
	query := `
		UPDATE holidays SET
			holiday_date = $2,
			name = $3,
			description = $4,
			last_updated_at = $5,
			last_updated_by = $6
		WHERE holiday_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.HolidayID,
		m.HolidayDate,
		m.Name,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update holiday %s: %w", holiday.HolidayID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxHolidayRepository) DeleteHoliday(ctx context.Context, holidayID string) error {
	query := `DELETE FROM holidays WHERE holiday_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, holidayID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday %s: %w", holidayID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
