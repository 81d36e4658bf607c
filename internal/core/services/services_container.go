package services

import (
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	publisher portssvc.LeaveEventPublisher,
	mailer portssvc.Mailer,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Leave = NewLeaveService(repos.LeaveRepo, repos.UserRepo, repos.HolidayRepo, publisher)
	container.Holiday = NewHolidayService(repos.HolidayRepo)
	container.Department = NewDepartmentService(repos.DepartmentRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.LeaveRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Events = publisher
	container.Mailer = mailer

	return container
}
