package usecase

import (
	"time"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
)

type UseCases struct {
	repo interfaces.Repository
	now  func() time.Time

	Task         *TaskUseCase
	Report       *ReportUseCase
	Notification *NotificationUseCase
	User         *UserUseCase
	Department   *DepartmentUseCase
	Ministry     *MinistryUseCase
	Auth         AuthUseCaseInterface
}

type Option func(*UseCases)

// WithClock overrides the time source, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func WithAuth(auth AuthUseCaseInterface) Option {
	return func(uc *UseCases) {
		uc.Auth = auth
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Task = NewTaskUseCase(repo, uc.now)
	uc.Report = NewReportUseCase(repo, uc.now)
	uc.Notification = NewNotificationUseCase(repo, uc.now)
	uc.User = NewUserUseCase(repo)
	uc.Department = NewDepartmentUseCase(repo)
	uc.Ministry = NewMinistryUseCase(repo)

	return uc
}
