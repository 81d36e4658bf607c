package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	leaveRepo := newPgxLeaveRepository(dbPool)
	holidayRepo := newPgxHolidayRepository(dbPool)
	departmentRepo := newPgxDepartmentRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:       userRepo,
		LeaveRepo:      leaveRepo,
		HolidayRepo:    holidayRepo,
		DepartmentRepo: departmentRepo,
		ReportingRepo:  reportingRepo,
	}
}
