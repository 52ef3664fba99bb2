package memory

import (
	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
)

// Memory is an in-memory repository for development and tests. It mimics the
// backend's last-write-wins semantics: updates replace whole records.
type Memory struct {
	task       *taskRepository
	report     *reportRepository
	department *departmentRepository
	user       *userRepository
	ministry   *ministryRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		task:       newTaskRepository(),
		report:     newReportRepository(),
		department: newDepartmentRepository(),
		user:       newUserRepository(),
		ministry:   newMinistryRepository(),
	}
}

func (m *Memory) Task() interfaces.TaskRepository {
	return m.task
}

func (m *Memory) Report() interfaces.ReportRepository {
	return m.report
}

func (m *Memory) Department() interfaces.DepartmentRepository {
	return m.department
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Ministry() interfaces.MinistryRepository {
	return m.ministry
}

func (m *Memory) Close() error {
	return nil
}
