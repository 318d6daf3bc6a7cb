package dto

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"required,email,max=320"`
	Role       string `json:"role" validate:"omitempty,max=200"`
	Department string `json:"department" validate:"omitempty,max=200"`
	HireDate   string `json:"hireDate" validate:"omitempty,datetime=2006-01-02"`
	Status     string `json:"status" validate:"omitempty,oneof=Active 'On Leave' Inactive Terminated"`
}

// UpdateEmployeeRequest - частичное обновление сотрудника
type UpdateEmployeeRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email      *string `json:"email" validate:"omitempty,email,max=320"`
	Role       *string `json:"role" validate:"omitempty,max=200"`
	Department *string `json:"department" validate:"omitempty,max=200"`
	HireDate   *string `json:"hireDate" validate:"omitempty,datetime=2006-01-02"`
	Status     *string `json:"status" validate:"omitempty,oneof=Active 'On Leave' Inactive Terminated"`
}

// EmployeeListQuery - параметры списка сотрудников
type EmployeeListQuery struct {
	Department string `validate:"omitempty,max=200"`
	Status     string `validate:"omitempty,oneof=Active 'On Leave' Inactive Terminated"`
}
