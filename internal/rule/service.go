package rule

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/frahmantamala/hrm/internal"
)

const msgRejected = "Rule could not be added."

type RepositoryAPI interface {
	Insert(ctx context.Context, row *Rule) error
	ListAll(ctx context.Context) ([]Rule, error)
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

// Create appends a rule. Its id continues from the highest id ever issued,
// even after DeleteAll.
func (s *Service) Create(ctx context.Context, dto CreateRuleDTO) (*Rule, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	r := dto.ToEntity()
	if err := s.repo.Insert(ctx, r); err != nil {
		s.logger.Error("failed to insert rule", "error", err)
		return nil, internal.RejectIntegrity(err, msgRejected, internal.ErrCodeRuleRejected)
	}

	s.logger.Info("rule added", "id", r.ID)
	return r, nil
}

func (s *Service) List(ctx context.Context) ([]Rule, error) {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	rules, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list rules", "error", err)
		return nil, err
	}
	return rules, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ruleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return internal.NewValidationFieldError("id", "rule id must be an integer", internal.ErrCodeValidationFailed)
	}

	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.repo.DeleteOne(ctx, Key{ID: ruleID})
	if err != nil {
		s.logger.Error("failed to delete rule", "id", ruleID, "error", err)
		return err
	}

	s.logger.Info("rule deleted", "id", ruleID, "rows", n)
	return nil
}

func (s *Service) DeleteAll(ctx context.Context) error {
	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Error("failed to delete all rules", "error", err)
		return err
	}

	s.logger.Info("all rules deleted")
	return nil
}
