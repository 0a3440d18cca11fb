package leave

import "github.com/frahmantamala/hrm/internal/store"

// Types are the leave types offered on the leave form.
var Types = []string{"Sick Leave", "Casual Leave", "Paid Leave", "Other"}

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Leave struct {
	EmpID     string     `json:"emp_id" gorm:"column:emp_id;primaryKey"`
	LeaveType string     `json:"leave_type" gorm:"column:leave_type"`
	StartDate store.Date `json:"start_date" gorm:"column:start_date;primaryKey"`
	EndDate   store.Date `json:"end_date" gorm:"column:end_date;primaryKey"`
	Status    string     `json:"status" gorm:"column:status"`
}

func (Leave) TableName() string {
	return store.TableLeave.String()
}

type Key struct {
	EmpID     string
	StartDate store.Date
	EndDate   store.Date
}

func (k Key) Predicate() (string, []any) {
	return "emp_id = ? AND start_date = ? AND end_date = ?",
		[]any{k.EmpID, k.StartDate.String(), k.EndDate.String()}
}

func NewRepository(db *store.DB) *store.Records[Leave, Key] {
	return store.NewRecords[Leave, Key](db, store.TableLeave)
}
