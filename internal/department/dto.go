package department

type CreateDepartmentDTO struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
}

func (d CreateDepartmentDTO) ToEntity() *Department {
	return &Department{
		DepartmentID:   d.DepartmentID,
		DepartmentName: d.DepartmentName,
	}
}

type DepartmentsResponse struct {
	Departments []Department `json:"departments"`
}

type IDsResponse struct {
	DepartmentIDs []string `json:"department_ids"`
}
