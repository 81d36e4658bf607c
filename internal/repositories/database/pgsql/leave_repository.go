package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
	"github.com/leavehq/leave_management_app/internal/models"
	"github.com/leavehq/leave_management_app/internal/utils/mapping"
	"github.com/leavehq/leave_management_app/internal/utils/pagination"
)

// leaveSelect joins the users table twice so listings carry employee and
// manager display fields without extra round trips.
const leaveSelect = `
	SELECT lr.leave_request_id, lr.employee_id, lr.department, lr.leave_type,
		lr.start_date, lr.end_date, lr.total_days, lr.reason, lr.status,
		lr.manager_id, lr.manager_note,
		lr.created_at, lr.created_by, lr.last_updated_at, lr.last_updated_by,
		e.name, e.email, COALESCE(m.name, '')
	FROM leave_requests lr
	JOIN users e ON e.user_id = lr.employee_id
	LEFT JOIN users m ON m.user_id = lr.manager_id`

// balanceColumnForLeaveType maps a leave type to the users balance column it
// draws from. The column name is interpolated into SQL and must never come
// from user input without passing through this function.
func balanceColumnForLeaveType(leaveType domain.LeaveType) (string, error) {
	switch leaveType {
	case domain.LeaveAnnual:
		return "leave_balance_annual", nil
	case domain.LeaveSick:
		return "leave_balance_sick", nil
	case domain.LeaveCasual:
		return "leave_balance_casual", nil
	default:
		return "", fmt.Errorf("unknown leave type %q: %w", leaveType, apperrors.ErrValidation)
	}
}

type PgxLeaveRepository struct {
	BaseRepository
}

func newPgxLeaveRepository(db *pgxpool.Pool) portsrepo.LeaveRepositoryFacade {
	return &PgxLeaveRepository{BaseRepository{Pool: db}}
}

// Ensure PgxLeaveRepository implements portsrepo.LeaveRepositoryFacade
var _ portsrepo.LeaveRepositoryFacade = (*PgxLeaveRepository)(nil)

func scanLeaveRow(row pgx.Row) (models.LeaveRequest, string, string, string, error) {
	var m models.LeaveRequest
	var employeeName, employeeEmail, managerName string
	err := row.Scan(
		&m.LeaveRequestID,
		&m.EmployeeID,
		&m.Department,
		&m.LeaveType,
		&m.StartDate,
		&m.EndDate,
		&m.TotalDays,
		&m.Reason,
		&m.Status,
		&m.ManagerID,
		&m.ManagerNote,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&employeeName,
		&employeeEmail,
		&managerName,
	)
	return m, employeeName, employeeEmail, managerName, err
}

func toDomainLeaveWithNames(m models.LeaveRequest, employeeName, employeeEmail, managerName string) domain.LeaveRequest {
	d := mapping.ToDomainLeaveRequest(m)
	d.EmployeeName = employeeName
	d.EmployeeEmail = employeeEmail
	d.ManagerName = managerName
	return d
}

func (r *PgxLeaveRepository) SaveLeaveRequest(ctx context.Context, leave domain.LeaveRequest) error {
	m := mapping.ToModelLeaveRequest(leave)
	query := `
		INSERT INTO leave_requests (leave_request_id, employee_id, department, leave_type,
			start_date, end_date, total_days, reason, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LeaveRequestID,
		m.EmployeeID,
		m.Department,
		m.LeaveType,
		m.StartDate,
		m.EndDate,
		m.TotalDays,
		m.Reason,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save leave request: %w", err)
	}
	return nil
}

func (r *PgxLeaveRepository) FindLeaveRequestByID(ctx context.Context, leaveRequestID string) (*domain.LeaveRequest, error) {
	query := leaveSelect + ` WHERE lr.leave_request_id = $1;`
	m, empName, empEmail, mgrName, err := scanLeaveRow(r.Pool.QueryRow(ctx, query, leaveRequestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave request by ID %s: %w", leaveRequestID, err)
	}
	d := toDomainLeaveWithNames(m, empName, empEmail, mgrName)
	return &d, nil
}

func (r *PgxLeaveRepository) ListLeaveRequests(ctx context.Context, filter portsrepo.LeaveRequestFilter, limit int, nextToken *string) ([]domain.LeaveRequest, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	conditions := ""
	args := []interface{}{}
	argPos := 1
	if filter.EmployeeID != nil {
		conditions += fmt.Sprintf(" AND lr.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Department != nil {
		conditions += fmt.Sprintf(" AND lr.department = $%d", argPos)
		args = append(args, *filter.Department)
		argPos++
	}
	if nextToken != nil && *nextToken != "" {
		before, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		conditions += fmt.Sprintf(" AND lr.created_at < $%d", argPos)
		args = append(args, before)
		argPos++
	}

	// Fetch one extra row to decide whether another page exists.
	query := leaveSelect + ` WHERE 1=1` + conditions +
		fmt.Sprintf(" ORDER BY lr.created_at DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var results []domain.LeaveRequest
	for rows.Next() {
		m, empName, empEmail, mgrName, err := scanLeaveRow(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		results = append(results, toDomainLeaveWithNames(m, empName, empEmail, mgrName))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating leave request rows: %w", err)
	}

	var token *string
	if len(results) > limit {
		results = results[:limit]
		t := pagination.EncodeToken(results[len(results)-1].CreatedAt)
		token = &t
	}
	return results, token, nil
}

func (r *PgxLeaveRepository) FindRecentLeaveRequests(ctx context.Context, filter portsrepo.LeaveRequestFilter, limit int) ([]domain.LeaveRequest, error) {
	results, _, err := r.ListLeaveRequests(ctx, filter, limit, nil)
	return results, err
}

func (r *PgxLeaveRepository) ApproveLeaveRequest(ctx context.Context, leave domain.LeaveRequest, managerID string, managerNote *string, decidedAt time.Time) error {
	balanceColumn, err := balanceColumnForLeaveType(leave.LeaveType)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Flip the status first, guarded on pending, so a concurrent decision on
	// the same request loses cleanly instead of double debiting.
	statusQuery := `
		UPDATE leave_requests
		SET status = $2, manager_id = $3, manager_note = $4, last_updated_at = $5, last_updated_by = $3
		WHERE leave_request_id = $1 AND status = $6;
	`
	tag, err := tx.Exec(ctx, statusQuery,
		leave.LeaveRequestID,
		string(domain.LeaveApproved),
		managerID,
		managerNote,
		decidedAt,
		string(domain.LeavePending),
	)
	if err != nil {
		return fmt.Errorf("failed to approve leave request %s: %w", leave.LeaveRequestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyProcessed
	}

	// Conditional debit: matches no row when the remaining balance cannot
	// cover the request, which rolls back the status flip above.
	debitQuery := fmt.Sprintf(`
		UPDATE users
		SET %s = %s - $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1 AND deleted_at IS NULL AND %s >= $2;
	`, balanceColumn, balanceColumn, balanceColumn)
	tag, err = tx.Exec(ctx, debitQuery, leave.EmployeeID, leave.TotalDays, decidedAt, managerID)
	if err != nil {
		return fmt.Errorf("failed to debit leave balance for user %s: %w", leave.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInsufficientBalance
	}

	return r.Commit(ctx, tx)
}

func (r *PgxLeaveRepository) RejectLeaveRequest(ctx context.Context, leaveRequestID string, managerID string, managerNote *string, decidedAt time.Time) error {
	query := `
		UPDATE leave_requests
		SET status = $2, manager_id = $3, manager_note = $4, last_updated_at = $5, last_updated_by = $3
		WHERE leave_request_id = $1 AND status = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		leaveRequestID,
		string(domain.LeaveRejected),
		managerID,
		managerNote,
		decidedAt,
		string(domain.LeavePending),
	)
	if err != nil {
		return fmt.Errorf("failed to reject leave request %s: %w", leaveRequestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyProcessed
	}
	return nil
}
