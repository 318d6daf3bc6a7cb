package dto

// CreateDocumentRequest - запрос на создание документа.
// StorageKey берётся из ответа на запрос ссылки для загрузки.
type CreateDocumentRequest struct {
	EmployeeID int64  `json:"employeeId" validate:"required,min=1"`
	Title      string `json:"title" validate:"required,min=1,max=300"`
	Category   string `json:"category" validate:"required,oneof=Contract Policy Certificate Identification Other"`
	FileName   string `json:"fileName" validate:"omitempty,max=300"`
	FileURL    string `json:"fileUrl" validate:"omitempty,url"`
	StorageKey string `json:"storageKey" validate:"omitempty,max=500"`
}

// UpdateDocumentRequest - частичное обновление документа
type UpdateDocumentRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=1,max=300"`
	Category   *string `json:"category" validate:"omitempty,oneof=Contract Policy Certificate Identification Other"`
	FileName   *string `json:"fileName" validate:"omitempty,max=300"`
	FileURL    *string `json:"fileUrl" validate:"omitempty,url"`
	StorageKey *string `json:"storageKey" validate:"omitempty,max=500"`
}

// DocumentListQuery - параметры списка документов
type DocumentListQuery struct {
	EmployeeID *int64 `validate:"omitempty,min=1"`
	Category   string `validate:"omitempty,oneof=Contract Policy Certificate Identification Other"`
}

// UploadURLRequest - запрос ссылки для загрузки файла
type UploadURLRequest struct {
	FileName string `json:"fileName" validate:"required,min=1,max=300"`
}

// FileURLResponse - подписанная ссылка на файл в хранилище
type FileURLResponse struct {
	URL        string `json:"url"`
	StorageKey string `json:"storageKey"`
}
