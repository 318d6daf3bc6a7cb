package dto

import "encoding/json"

// CreateGoalRequest - запрос на создание цели
type CreateGoalRequest struct {
	EmployeeID  int64    `json:"employeeId" validate:"required,min=1"`
	Objective   string   `json:"objective" validate:"required,min=1,max=500"`
	Description string   `json:"description" validate:"max=5000"`
	DueDate     string   `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Category    string   `json:"category" validate:"required,oneof=Performance Development Project Personal"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Status      string   `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Completed Cancelled"`
	KeyResults  []string `json:"keyResults" validate:"omitempty,dive,min=1,max=500"`
}

// UpdateGoalRequest - частичное обновление цели.
// KeyResults разбирается сервисом: значение обязано быть списком строк.
type UpdateGoalRequest struct {
	EmployeeID  *int64          `json:"employeeId" validate:"omitempty,min=1"`
	Objective   *string         `json:"objective" validate:"omitempty,min=1,max=500"`
	Description *string         `json:"description" validate:"omitempty,max=5000"`
	DueDate     *string         `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Category    *string         `json:"category" validate:"omitempty,oneof=Performance Development Project Personal"`
	Priority    *string         `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Status      *string         `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Completed Cancelled"`
	KeyResults  json.RawMessage `json:"keyResults"`
}

// GoalListQuery - параметры списка целей
type GoalListQuery struct {
	EmployeeID *int64 `validate:"omitempty,min=1"`
	Status     string `validate:"omitempty,oneof='Not Started' 'In Progress' Completed Cancelled"`
}
