package department

import "github.com/frahmantamala/hrm/internal/store"

type Department struct {
	DepartmentID   string `json:"department_id" gorm:"column:department_id;primaryKey"`
	DepartmentName string `json:"department_name" gorm:"column:department_name"`
}

func (Department) TableName() string {
	return store.TableDepartment.String()
}

// Key identifies one department row.
type Key struct {
	DepartmentID string
}

func (k Key) Predicate() (string, []any) {
	return "department_id = ?", []any{k.DepartmentID}
}

func NewRepository(db *store.DB) *store.Records[Department, Key] {
	return store.NewRecords[Department, Key](db, store.TableDepartment)
}
