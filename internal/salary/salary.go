package salary

import "github.com/frahmantamala/hrm/internal/store"

// PaymentMethods are the methods offered on the salary form. Storage accepts
// any text.
var PaymentMethods = []string{"Bank Transfer", "Cash", "UPI", "Other"}

type Salary struct {
	EmpID               string     `json:"emp_id" gorm:"column:emp_id;primaryKey"`
	Amount              int64      `json:"amount" gorm:"column:amount"`
	PaymentDate         store.Date `json:"payment_date" gorm:"column:payment_date;primaryKey"`
	BankDetails         string     `json:"bank_details" gorm:"column:bank_details"`
	TotalMonthlyStipend int64      `json:"total_monthly_stipend" gorm:"column:total_monthly_stipend"`
	AmountDeducted      int64      `json:"amount_deducted" gorm:"column:amount_deducted"`
	PaymentMethod       string     `json:"payment_method" gorm:"column:payment_method"`
}

func (Salary) TableName() string {
	return store.TableSalary.String()
}

// Record is a salary row joined with the employee's name. Rows whose
// employee is gone are not listed.
type Record struct {
	EmpID               string     `json:"emp_id" db:"emp_id"`
	Name                string     `json:"name" db:"name"`
	Amount              int64      `json:"amount" db:"amount"`
	TotalMonthlyStipend int64      `json:"total_monthly_stipend" db:"total_monthly_stipend"`
	AmountDeducted      int64      `json:"amount_deducted" db:"amount_deducted"`
	BankDetails         string     `json:"bank_details" db:"bank_details"`
	PaymentMethod       string     `json:"payment_method" db:"payment_method"`
	PaymentDate         store.Date `json:"payment_date" db:"payment_date"`
}

type Key struct {
	EmpID       string
	PaymentDate store.Date
}

func (k Key) Predicate() (string, []any) {
	return "emp_id = ? AND payment_date = ?", []any{k.EmpID, k.PaymentDate.String()}
}
