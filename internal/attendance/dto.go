package attendance

import "github.com/frahmantamala/hrm/internal/store"

type CreateAttendanceDTO struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// ToEntity parses the date. The status is left to the storage check.
func (d CreateAttendanceDTO) ToEntity() (*Attendance, error) {
	day, err := store.ParseDate("date", d.Date)
	if err != nil {
		return nil, err
	}
	return &Attendance{
		EmployeeID: d.EmployeeID,
		Date:       day,
		Status:     d.Status,
	}, nil
}

type AttendanceResponse struct {
	Attendance []Attendance `json:"attendance"`
}
