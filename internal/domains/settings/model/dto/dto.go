package dto

type GetSettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" validate:"required,min=1"`
}

type TestEmailRequest struct {
	Recipient string `json:"recipient" validate:"required,email"`
}
