package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/hrm/internal"
	"github.com/frahmantamala/hrm/internal/store"
)

const msgRejected = "Error recording attendance."

type RepositoryAPI interface {
	Insert(ctx context.Context, row *Attendance) error
	ListAll(ctx context.Context) ([]Attendance, error)
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

// Create records one day for one employee. A second entry for the same day,
// an unknown employee or a status other than Present or Absent is rejected.
func (s *Service) Create(ctx context.Context, dto CreateAttendanceDTO) (*Attendance, error) {
	att, err := dto.ToEntity()
	if err != nil {
		return nil, err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Insert(ctx, att); err != nil {
		s.logger.Error("failed to record attendance", "employee_id", att.EmployeeID, "date", att.Date, "error", err)
		return nil, internal.RejectIntegrity(err, msgRejected, internal.ErrCodeAttendanceRejected)
	}

	s.logger.Info("attendance recorded", "employee_id", att.EmployeeID, "date", att.Date, "status", att.Status)
	return att, nil
}

func (s *Service) List(ctx context.Context) ([]Attendance, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list attendance", "error", err)
		return nil, err
	}
	return rows, nil
}

func (s *Service) Delete(ctx context.Context, employeeID, date string) error {
	day, err := store.ParseDate("date", date)
	if err != nil {
		return err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.repo.DeleteOne(ctx, Key{EmployeeID: employeeID, Date: day})
	if err != nil {
		s.logger.Error("failed to delete attendance", "employee_id", employeeID, "date", day, "error", err)
		return err
	}

	s.logger.Info("attendance deleted", "employee_id", employeeID, "date", day, "rows", n)
	return nil
}

func (s *Service) DeleteAll(ctx context.Context) error {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Error("failed to delete all attendance", "error", err)
		return err
	}

	s.logger.Info("all attendance records deleted")
	return nil
}
