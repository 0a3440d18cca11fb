package department

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/hrm/internal"
)

const (
	msgRejected       = "Department ID already exists."
	msgDeleteRejected = "Department is still assigned to employees."
)

type RepositoryAPI interface {
	Insert(ctx context.Context, row *Department) error
	ListAll(ctx context.Context) ([]Department, error)
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

func (s *Service) Create(ctx context.Context, dto CreateDepartmentDTO) (*Department, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	dept := dto.ToEntity()
	if err := s.repo.Insert(ctx, dept); err != nil {
		s.logger.Error("failed to insert department", "department_id", dept.DepartmentID, "error", err)
		return nil, internal.RejectIntegrity(err, msgRejected, internal.ErrCodeDepartmentRejected)
	}

	s.logger.Info("department added", "department_id", dept.DepartmentID)
	return dept, nil
}

func (s *Service) List(ctx context.Context) ([]Department, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	depts, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, err
	}
	return depts, nil
}

// IDs lists the department ids an employee may reference.
func (s *Service) IDs(ctx context.Context) ([]string, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	ids, err := s.repo.Keys(ctx)
	if err != nil {
		s.logger.Error("failed to list department ids", "error", err)
		return nil, err
	}
	return ids, nil
}

// Delete removes one department. A department that employees still point to
// is kept and an integrity error is returned.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.repo.DeleteOne(ctx, Key{DepartmentID: id})
	if err != nil {
		s.logger.Error("failed to delete department", "department_id", id, "error", err)
		return internal.RejectIntegrity(err, msgDeleteRejected, internal.ErrCodeDeleteRejected)
	}

	s.logger.Info("department deleted", "department_id", id, "rows", n)
	return nil
}

func (s *Service) DeleteAll(ctx context.Context) error {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Error("failed to delete all departments", "error", err)
		return internal.RejectIntegrity(err, msgDeleteRejected, internal.ErrCodeDeleteRejected)
	}

	s.logger.Info("all departments deleted")
	return nil
}
