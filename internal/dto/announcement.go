package dto

// CreateAnnouncementRequest - запрос на создание объявления
type CreateAnnouncementRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=300"`
	Content     string `json:"content" validate:"required,min=1"`
	Priority    string `json:"priority" validate:"omitempty,oneof=Low Normal High"`
	PublishDate string `json:"publishDate" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate  string `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateAnnouncementRequest - частичное обновление объявления
type UpdateAnnouncementRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=300"`
	Content     *string `json:"content" validate:"omitempty,min=1"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=Low Normal High"`
	PublishDate *string `json:"publishDate" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate  *string `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
}

// AnnouncementListQuery - параметры списка объявлений
type AnnouncementListQuery struct {
	ActiveOnly bool
}
