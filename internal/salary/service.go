package salary

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/hrm/internal"
	"github.com/frahmantamala/hrm/internal/store"
)

const msgRejected = "Invalid Employee ID or duplicate payment date."

type RepositoryAPI interface {
	Insert(ctx context.Context, row *Salary) error
	ListWithNames(ctx context.Context) ([]Record, error)
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

func (s *Service) Create(ctx context.Context, dto CreateSalaryDTO) (*Salary, error) {
	sal, err := dto.ToEntity()
	if err != nil {
		return nil, err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Insert(ctx, sal); err != nil {
		s.logger.Error("failed to insert salary", "emp_id", sal.EmpID, "payment_date", sal.PaymentDate, "error", err)
		return nil, internal.RejectIntegrity(err, msgRejected, internal.ErrCodeSalaryRejected)
	}

	s.logger.Info("salary record added", "emp_id", sal.EmpID, "payment_date", sal.PaymentDate)
	return sal, nil
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	records, err := s.repo.ListWithNames(ctx)
	if err != nil {
		s.logger.Error("failed to list salaries", "error", err)
		return nil, err
	}
	return records, nil
}

func (s *Service) Delete(ctx context.Context, empID, paymentDate string) error {
	paid, err := store.ParseDate("payment_date", paymentDate)
	if err != nil {
		return err
	}

	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.repo.DeleteOne(ctx, Key{EmpID: empID, PaymentDate: paid})
	if err != nil {
		s.logger.Error("failed to delete salary", "emp_id", empID, "payment_date", paid, "error", err)
		return err
	}

	s.logger.Info("salary record deleted", "emp_id", empID, "payment_date", paid, "rows", n)
	return nil
}

func (s *Service) DeleteAll(ctx context.Context) error {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Error("failed to delete all salaries", "error", err)
		return err
	}

	s.logger.Info("all salary records deleted")
	return nil
}
