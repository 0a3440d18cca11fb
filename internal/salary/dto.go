package salary

import "github.com/frahmantamala/hrm/internal/store"

type CreateSalaryDTO struct {
	EmpID               string `json:"emp_id"`
	Amount              int64  `json:"amount"`
	PaymentDate         string `json:"payment_date"`
	BankDetails         string `json:"bank_details"`
	TotalMonthlyStipend int64  `json:"total_monthly_stipend"`
	AmountDeducted      int64  `json:"amount_deducted"`
	PaymentMethod       string `json:"payment_method"`
}

func (d CreateSalaryDTO) ToEntity() (*Salary, error) {
	paid, err := store.ParseDate("payment_date", d.PaymentDate)
	if err != nil {
		return nil, err
	}

	return &Salary{
		EmpID:               d.EmpID,
		Amount:              d.Amount,
		PaymentDate:         paid,
		BankDetails:         d.BankDetails,
		TotalMonthlyStipend: d.TotalMonthlyStipend,
		AmountDeducted:      d.AmountDeducted,
		PaymentMethod:       d.PaymentMethod,
	}, nil
}

type SalariesResponse struct {
	Salaries []Record `json:"salaries"`
}

type PaymentMethodsResponse struct {
	PaymentMethods []string `json:"payment_methods"`
}
