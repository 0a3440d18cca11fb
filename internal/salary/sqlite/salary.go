package sqlite

import (
	"context"
	"fmt"

	"github.com/frahmantamala/hrm/internal/salary"
	"github.com/frahmantamala/hrm/internal/store"
)

const listWithNames = `
	SELECT s.emp_id, e.name, s.amount,
	       COALESCE(s.total_monthly_stipend, 0) AS total_monthly_stipend,
	       COALESCE(s.amount_deducted, 0) AS amount_deducted,
	       COALESCE(s.bank_details, '') AS bank_details,
	       COALESCE(s.payment_method, '') AS payment_method,
	       s.payment_date
	FROM salary s
	JOIN employee e ON s.emp_id = e.emp_id`

// SalaryRepository writes through the generic records and reads through a
// join that needs the employee table.
type SalaryRepository struct {
	*store.Records[salary.Salary, salary.Key]
	db *store.DB
}

func NewSalaryRepository(db *store.DB) *SalaryRepository {
	return &SalaryRepository{
		Records: store.NewRecords[salary.Salary, salary.Key](db, store.TableSalary),
		db:      db,
	}
}

func (r *SalaryRepository) ListWithNames(ctx context.Context) ([]salary.Record, error) {
	records := []salary.Record{}
	if err := r.db.SQL.SelectContext(ctx, &records, listWithNames); err != nil {
		return nil, fmt.Errorf("listing salaries: %w", err)
	}
	return records, nil
}
