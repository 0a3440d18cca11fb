package leave

import "github.com/frahmantamala/hrm/internal/store"

type CreateLeaveDTO struct {
	EmpID     string `json:"emp_id"`
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

// ToEntity parses both dates. An end before the start is stored as given.
func (d CreateLeaveDTO) ToEntity() (*Leave, error) {
	start, err := store.ParseDate("start_date", d.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := store.ParseDate("end_date", d.EndDate)
	if err != nil {
		return nil, err
	}

	return &Leave{
		EmpID:     d.EmpID,
		LeaveType: d.LeaveType,
		StartDate: start,
		EndDate:   end,
		Status:    d.Status,
	}, nil
}

type LeavesResponse struct {
	Leaves []Leave `json:"leaves"`
}

type TypesResponse struct {
	LeaveTypes []string `json:"leave_types"`
}
