package dto

// UpdateTenantRequest - частичное обновление арендатора
type UpdateTenantRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email,max=320"`
	Status       *string `json:"status" validate:"omitempty,oneof=active inactive"`
}
