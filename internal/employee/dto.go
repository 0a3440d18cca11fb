package employee

import (
	"strings"

	"github.com/frahmantamala/hrm/internal/store"
)

type CreateEmployeeDTO struct {
	EmpID        string `json:"emp_id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	DOB          string `json:"dob"`
	Position     string `json:"position"`
	DepartmentID string `json:"department_id"`
}

// ToEntity parses the date of birth. An empty department id is stored as
// NULL, anything else must name an existing department.
func (d CreateEmployeeDTO) ToEntity() (*Employee, error) {
	dob, err := store.ParseOptionalDate("dob", d.DOB)
	if err != nil {
		return nil, err
	}

	emp := &Employee{
		EmpID:    d.EmpID,
		Name:     d.Name,
		Address:  d.Address,
		DOB:      dob,
		Position: d.Position,
	}
	if dept := strings.TrimSpace(d.DepartmentID); dept != "" {
		emp.DepartmentID = &dept
	}
	return emp, nil
}

type EmployeesResponse struct {
	Employees []Employee `json:"employees"`
}

type IDsResponse struct {
	EmployeeIDs []string `json:"employee_ids"`
}
