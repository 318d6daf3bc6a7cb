package dto

// CreateOnboardingTaskRequest - запрос на создание задачи адаптации
type CreateOnboardingTaskRequest struct {
	EmployeeID  int64  `json:"employeeId" validate:"required,min=1"`
	Title       string `json:"title" validate:"required,min=1,max=300"`
	Description string `json:"description" validate:"max=5000"`
	DueDate     string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
}

// UpdateOnboardingTaskRequest - частичное обновление задачи адаптации
type UpdateOnboardingTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=300"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
}

// OnboardingTaskListQuery - параметры списка задач адаптации
type OnboardingTaskListQuery struct {
	EmployeeID *int64 `validate:"omitempty,min=1"`
	Status     string `validate:"omitempty,oneof=Pending 'In Progress' Completed"`
}
