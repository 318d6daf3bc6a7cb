package dto

// CreateRecognitionRequest - запрос на создание благодарности
type CreateRecognitionRequest struct {
	FromEmployeeID int64  `json:"fromEmployeeId" validate:"required,min=1"`
	ToEmployeeID   int64  `json:"toEmployeeId" validate:"required,min=1"`
	Category       string `json:"category" validate:"required,oneof=Teamwork Innovation Leadership Excellence 'Customer Focus'"`
	Message        string `json:"message" validate:"required,min=1,max=2000"`
}

// UpdateRecognitionRequest - частичное обновление благодарности
type UpdateRecognitionRequest struct {
	Category *string `json:"category" validate:"omitempty,oneof=Teamwork Innovation Leadership Excellence 'Customer Focus'"`
	Message  *string `json:"message" validate:"omitempty,min=1,max=2000"`
}

// RecognitionListQuery - параметры списка благодарностей
type RecognitionListQuery struct {
	EmployeeID *int64 `validate:"omitempty,min=1"`
	Category   string `validate:"omitempty,oneof=Teamwork Innovation Leadership Excellence 'Customer Focus'"`
}
