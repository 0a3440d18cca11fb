package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/hrm/internal"
)

const msgRejected = "Employee ID already exists or invalid foreign key."

type RepositoryAPI interface {
	Insert(ctx context.Context, row *Employee) error
	ListAll(ctx context.Context) ([]Employee, error)
	Keys(ctx context.Context) ([]string, error)
	DeleteOne(ctx context.Context, key Key) (int64, error)
	DeleteAll(ctx context.Context) error
}

type Service struct {
	repo    RepositoryAPI
	logger  *slog.Logger
	timeout time.Duration
}

func NewService(repo RepositoryAPI, logger *slog.Logger, timeout time.Duration) *Service {
	return &Service{
		repo:    repo,
		logger:  logger,
		timeout: timeout,
	}
}

func (s *Service) Create(ctx context.Context, dto CreateEmployeeDTO) (*Employee, error) {
	emp, err := dto.ToEntity()
	if err != nil {
		return nil, err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Insert(ctx, emp); err != nil {
		s.logger.Error("failed to insert employee", "emp_id", emp.EmpID, "error", err)
		return nil, internal.RejectIntegrity(err, msgRejected, internal.ErrCodeEmployeeRejected)
	}

	s.logger.Info("employee added", "emp_id", emp.EmpID)
	return emp, nil
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	emps, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return emps, nil
}

// IDs lists the employee ids salary, attendance and leave rows may reference.
func (s *Service) IDs(ctx context.Context) ([]string, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	ids, err := s.repo.Keys(ctx)
	if err != nil {
		s.logger.Error("failed to list employee ids", "error", err)
		return nil, err
	}
	return ids, nil
}

func (s *Service) Delete(ctx context.Context, empID string) error {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.repo.DeleteOne(ctx, Key{EmpID: empID})
	if err != nil {
		s.logger.Error("failed to delete employee", "emp_id", empID, "error", err)
		return err
	}

	s.logger.Info("employee deleted", "emp_id", empID, "rows", n)
	return nil
}

func (s *Service) DeleteAll(ctx context.Context) error {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Error("failed to delete all employees", "error", err)
		return err
	}

	s.logger.Info("all employees deleted")
	return nil
}
