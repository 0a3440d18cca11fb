package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/hrm/internal"
	"github.com/frahmantamala/hrm/internal/store"
)

const msgRejected = "Error inserting leave record."

type RepositoryAPI interface {
	Insert(ctx context.Context, row *Leave) error
	ListAll(ctx context.Context) ([]Leave, error)
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

func (s *Service) Create(ctx context.Context, dto CreateLeaveDTO) (*Leave, error) {
	lv, err := dto.ToEntity()
	if err != nil {
		return nil, err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Insert(ctx, lv); err != nil {
		s.logger.Error("failed to insert leave record", "emp_id", lv.EmpID, "start_date", lv.StartDate, "error", err)
		return nil, internal.RejectIntegrity(err, msgRejected, internal.ErrCodeLeaveRejected)
	}

	s.logger.Info("leave record added", "emp_id", lv.EmpID, "start_date", lv.StartDate, "end_date", lv.EndDate)
	return lv, nil
}

func (s *Service) List(ctx context.Context) ([]Leave, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list leave records", "error", err)
		return nil, err
	}
	return rows, nil
}

func (s *Service) Delete(ctx context.Context, empID, startDate, endDate string) error {
	start, err := store.ParseDate("start_date", startDate)
	if err != nil {
		return err
	}
	end, err := store.ParseDate("end_date", endDate)
	if err != nil {
		return err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.repo.DeleteOne(ctx, Key{EmpID: empID, StartDate: start, EndDate: end})
	if err != nil {
		s.logger.Error("failed to delete leave record", "emp_id", empID, "error", err)
		return err
	}

	s.logger.Info("leave record deleted", "emp_id", empID, "start_date", start, "end_date", end, "rows", n)
	return nil
}

func (s *Service) DeleteAll(ctx context.Context) error {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Error("failed to delete all leave records", "error", err)
		return err
	}

	s.logger.Info("all leave records deleted")
	return nil
}
