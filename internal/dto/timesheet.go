package dto

// CreateTimesheetRequest - запрос на создание табеля
type CreateTimesheetRequest struct {
	EmployeeID  int64   `json:"employeeId" validate:"required,min=1"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	HoursWorked float64 `json:"hoursWorked" validate:"required,gt=0,lte=24"`
	Project     string  `json:"project" validate:"max=200"`
	Description string  `json:"description" validate:"max=2000"`
	Status      string  `json:"status" validate:"omitempty,oneof=Draft Submitted Approved Rejected"`
}

// UpdateTimesheetRequest - частичное обновление табеля
type UpdateTimesheetRequest struct {
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	HoursWorked *float64 `json:"hoursWorked" validate:"omitempty,gt=0,lte=24"`
	Project     *string  `json:"project" validate:"omitempty,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Status      *string  `json:"status" validate:"omitempty,oneof=Draft Submitted Approved Rejected"`
}

// TimesheetListQuery - параметры списка табелей
type TimesheetListQuery struct {
	EmployeeID *int64 `validate:"omitempty,min=1"`
	Status     string `validate:"omitempty,oneof=Draft Submitted Approved Rejected"`
	From       string `validate:"omitempty,datetime=2006-01-02"`
	To         string `validate:"omitempty,datetime=2006-01-02"`
}
