package dto

// CreateLeaveRequestRequest - запрос на создание заявки на отпуск
type CreateLeaveRequestRequest struct {
	EmployeeID int64  `json:"employeeId" validate:"required,min=1"`
	Type       string `json:"type" validate:"required,oneof=Vacation Sick Personal"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" validate:"max=2000"`
}

// UpdateLeaveRequestRequest - частичное обновление заявки, в том числе согласование
type UpdateLeaveRequestRequest struct {
	Type      *string `json:"type" validate:"omitempty,oneof=Vacation Sick Personal"`
	StartDate *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Reason    *string `json:"reason" validate:"omitempty,max=2000"`
	Status    *string `json:"status" validate:"omitempty,oneof=Pending Approved Rejected"`
}

// LeaveRequestListQuery - параметры списка заявок
type LeaveRequestListQuery struct {
	EmployeeID *int64 `validate:"omitempty,min=1"`
	Status     string `validate:"omitempty,oneof=Pending Approved Rejected"`
	Type       string `validate:"omitempty,oneof=Vacation Sick Personal"`
}
