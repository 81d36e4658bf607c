package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
	"github.com/leavehq/leave_management_app/internal/models"
)

type PgxDepartmentRepository struct {
	BaseRepository
}

func newPgxDepartmentRepository(db *pgxpool.Pool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{BaseRepository{Pool: db}}
}

// Ensure PgxDepartmentRepository implements portsrepo.DepartmentRepositoryFacade
var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

func toDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		DepartmentID: m.DepartmentID,
		Name:         m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	query := `
		INSERT INTO departments (department_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		department.DepartmentID,
		department.Name,
		department.CreatedAt,
		department.CreatedBy,
		department.LastUpdatedAt,
		department.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save department: %w", err)
	}
	return nil
}

func (r *PgxDepartmentRepository) FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	query := `
		SELECT department_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM departments
		WHERE lower(name) = lower($1);
	`
	var m models.Department
	err := r.Pool.QueryRow(ctx, query, name).Scan(
		&m.DepartmentID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department by name %s: %w", name, err)
	}
	d := toDomainDepartment(m)
	return &d, nil
}

func (r *PgxDepartmentRepository) FindDepartments(ctx context.Context) ([]domain.Department, error) {
	query := `
		SELECT department_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM departments
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var ds []domain.Department
	for rows.Next() {
		var m models.Department
		if err := rows.Scan(
			&m.DepartmentID,
			&m.Name,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		ds = append(ds, toDomainDepartment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}
	return ds, nil
}
