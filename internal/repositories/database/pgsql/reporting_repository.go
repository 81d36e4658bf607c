package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// leaveFilterClause renders optional employee/department predicates starting
// at the given placeholder position.
func leaveFilterClause(filter portsrepo.LeaveRequestFilter, argPos int) (string, []interface{}) {
	clause := ""
	args := []interface{}{}
	if filter.EmployeeID != nil {
		clause += fmt.Sprintf(" AND employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Department != nil {
		clause += fmt.Sprintf(" AND department = $%d", argPos)
		args = append(args, *filter.Department)
	}
	return clause, args
}

func (r *PgxReportingRepository) CountLeavesByStatus(ctx context.Context, filter portsrepo.LeaveRequestFilter) ([]domain.StatusCount, error) {
	clause, args := leaveFilterClause(filter, 1)
	query := `
		SELECT status, COUNT(*)
		FROM leave_requests
		WHERE 1=1` + clause + `
		GROUP BY status;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count leaves by status: %w", err)
	}
	defer rows.Close()

	var counts []domain.StatusCount
	for rows.Next() {
		var c domain.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status count rows: %w", err)
	}
	return counts, nil
}

func (r *PgxReportingRepository) CountLeavesByType(ctx context.Context, filter portsrepo.LeaveRequestFilter) ([]domain.TypeCount, error) {
	clause, args := leaveFilterClause(filter, 1)
	query := `
		SELECT leave_type, COUNT(*)
		FROM leave_requests
		WHERE 1=1` + clause + `
		GROUP BY leave_type;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count leaves by type: %w", err)
	}
	defer rows.Close()

	var counts []domain.TypeCount
	for rows.Next() {
		var c domain.TypeCount
		if err := rows.Scan(&c.LeaveType, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan type count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type count rows: %w", err)
	}
	return counts, nil
}

func (r *PgxReportingRepository) MonthlyLeaveTrends(ctx context.Context, filter portsrepo.LeaveRequestFilter, since time.Time) ([]domain.MonthlyTrendRow, error) {
	clause, args := leaveFilterClause(filter, 2)
	query := `
		SELECT EXTRACT(YEAR FROM created_at)::int AS year,
			EXTRACT(MONTH FROM created_at)::int AS month,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected')
		FROM leave_requests
		WHERE created_at >= $1` + clause + `
		GROUP BY year, month
		ORDER BY year ASC, month ASC;
	`
	allArgs := append([]interface{}{since}, args...)
	rows, err := r.Pool.Query(ctx, query, allArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly leave trends: %w", err)
	}
	defer rows.Close()

	var trends []domain.MonthlyTrendRow
	for rows.Next() {
		var t domain.MonthlyTrendRow
		if err := rows.Scan(&t.Year, &t.Month, &t.Count, &t.Approved, &t.Rejected); err != nil {
			return nil, fmt.Errorf("failed to scan monthly trend row: %w", err)
		}
		trends = append(trends, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly trend rows: %w", err)
	}
	return trends, nil
}

func (r *PgxReportingRepository) DepartmentLeaveBreakdown(ctx context.Context) ([]domain.DepartmentLeaveStats, error) {
	query := `
		SELECT department,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COUNT(*) FILTER (WHERE status = 'pending')
		FROM leave_requests
		GROUP BY department
		ORDER BY department ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query department leave breakdown: %w", err)
	}
	defer rows.Close()

	var stats []domain.DepartmentLeaveStats
	for rows.Next() {
		var s domain.DepartmentLeaveStats
		if err := rows.Scan(&s.Department, &s.TotalRequests, &s.ApprovedRequests, &s.RejectedRequests, &s.PendingRequests); err != nil {
			return nil, fmt.Errorf("failed to scan department stats row: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department stats rows: %w", err)
	}
	return stats, nil
}

func (r *PgxReportingRepository) CountUsersByRole(ctx context.Context) ([]domain.RoleCount, error) {
	query := `
		SELECT role, COUNT(*)
		FROM users
		WHERE deleted_at IS NULL
		GROUP BY role;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count users by role: %w", err)
	}
	defer rows.Close()

	var counts []domain.RoleCount
	for rows.Next() {
		var c domain.RoleCount
		if err := rows.Scan(&c.Role, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan role count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role count rows: %w", err)
	}
	return counts, nil
}

func (r *PgxReportingRepository) CountUsersByRoleAndDepartment(ctx context.Context) ([]domain.RoleDepartmentCount, error) {
	query := `
		SELECT role, department, COUNT(*)
		FROM users
		WHERE deleted_at IS NULL
		GROUP BY role, department
		ORDER BY department ASC, role ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count users by role and department: %w", err)
	}
	defer rows.Close()

	var counts []domain.RoleDepartmentCount
	for rows.Next() {
		var c domain.RoleDepartmentCount
		if err := rows.Scan(&c.Role, &c.Department, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan role department count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role department count rows: %w", err)
	}
	return counts, nil
}

func (r *PgxReportingRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CountLeaves(ctx context.Context, status *domain.LeaveStatus) (int, error) {
	var count int
	var err error
	if status != nil {
		err = r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1;`, string(*status)).Scan(&count)
	} else {
		err = r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests;`).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CountDistinctDepartments(ctx context.Context) (int, error) {
	var count int
	query := `
		SELECT COUNT(DISTINCT department)
		FROM users
		WHERE deleted_at IS NULL AND department <> '';
	`
	if err := r.Pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count distinct departments: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CountHolidays(ctx context.Context, from, to *time.Time) (int, error) {
	var count int
	var err error
	switch {
	case from != nil && to != nil:
		err = r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM holidays WHERE holiday_date >= $1 AND holiday_date <= $2;`, *from, *to).Scan(&count)
	case from != nil:
		err = r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM holidays WHERE holiday_date >= $1;`, *from).Scan(&count)
	case to != nil:
		err = r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM holidays WHERE holiday_date <= $1;`, *to).Scan(&count)
	default:
		err = r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM holidays;`).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count holidays: %w", err)
	}
	return count, nil
}
