package employee

import "github.com/frahmantamala/hrm/internal/store"

type Employee struct {
	EmpID        string      `json:"emp_id" gorm:"column:emp_id;primaryKey"`
	Name         string      `json:"name" gorm:"column:name"`
	Address      string      `json:"address" gorm:"column:address"`
	DOB          *store.Date `json:"dob" gorm:"column:dob"`
	Position     string      `json:"position" gorm:"column:position"`
	DepartmentID *string     `json:"department_id" gorm:"column:department_id"`
}

func (Employee) TableName() string {
	return store.TableEmployee.String()
}

// Key identifies one employee row. Deleting it cascades to the employee's
// salary, attendance and leave rows.
type Key struct {
	EmpID string
}

func (k Key) Predicate() (string, []any) {
	return "emp_id = ?", []any{k.EmpID}
}

func NewRepository(db *store.DB) *store.Records[Employee, Key] {
	return store.NewRecords[Employee, Key](db, store.TableEmployee)
}
