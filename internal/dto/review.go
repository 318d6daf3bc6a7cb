package dto

// CreateReviewRequest - запрос на создание оценки
type CreateReviewRequest struct {
	EmployeeID   int64  `json:"employeeId" validate:"required,min=1"`
	ReviewerID   int64  `json:"reviewerId" validate:"required,min=1"`
	ReviewPeriod string `json:"reviewPeriod" validate:"required,min=1,max=100"`
	ReviewDate   string `json:"reviewDate" validate:"required,datetime=2006-01-02"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Strengths    string `json:"strengths" validate:"max=5000"`
	Improvements string `json:"improvements" validate:"max=5000"`
	Comments     string `json:"comments" validate:"max=5000"`
	Status       string `json:"status" validate:"omitempty,oneof=Draft Submitted Acknowledged"`
}

// UpdateReviewRequest - частичное обновление оценки
type UpdateReviewRequest struct {
	ReviewerID   *int64  `json:"reviewerId" validate:"omitempty,min=1"`
	ReviewPeriod *string `json:"reviewPeriod" validate:"omitempty,min=1,max=100"`
	ReviewDate   *string `json:"reviewDate" validate:"omitempty,datetime=2006-01-02"`
	Rating       *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Strengths    *string `json:"strengths" validate:"omitempty,max=5000"`
	Improvements *string `json:"improvements" validate:"omitempty,max=5000"`
	Comments     *string `json:"comments" validate:"omitempty,max=5000"`
	Status       *string `json:"status" validate:"omitempty,oneof=Draft Submitted Acknowledged"`
}

// ReviewListQuery - параметры списка оценок
type ReviewListQuery struct {
	EmployeeID *int64 `validate:"omitempty,min=1"`
	Status     string `validate:"omitempty,oneof=Draft Submitted Acknowledged"`
}
