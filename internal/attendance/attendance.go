package attendance

import "github.com/frahmantamala/hrm/internal/store"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

type Attendance struct {
	EmployeeID string     `json:"employee_id" gorm:"column:employee_id;primaryKey"`
	Date       store.Date `json:"date" gorm:"column:date;primaryKey"`
	Status     string     `json:"status" gorm:"column:status"`
}

func (Attendance) TableName() string {
	return store.TableAttendance.String()
}

type Key struct {
	EmployeeID string
	Date       store.Date
}

func (k Key) Predicate() (string, []any) {
	return "employee_id = ? AND date = ?", []any{k.EmployeeID, k.Date.String()}
}

func NewRepository(db *store.DB) *store.Records[Attendance, Key] {
	return store.NewRecords[Attendance, Key](db, store.TableAttendance)
}
