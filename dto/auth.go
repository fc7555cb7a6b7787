package dto

// ==================== AUTHENTICATION REQUEST DTOs ====================

type RegisterDeviceRequest struct {
	DeviceID     string `json:"device_id" validate:"required,min=8,max=128" example:"ios_3F2504E0-4F89-11D3-9A0C-0305E82C3301"`
	DeviceSecret string `json:"device_secret" validate:"required,min=16,max=128" example:"b2a1f0c9d8e7..."`
	Name         string `json:"name,omitempty" validate:"omitempty,max=40" example:"Friend"`
}

func (r RegisterDeviceRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LoginDeviceRequest struct {
	DeviceID     string `json:"device_id" validate:"required,min=8,max=128" example:"ios_3F2504E0-4F89-11D3-9A0C-0305E82C3301"`
	DeviceSecret string `json:"device_secret" validate:"required,min=16,max=128" example:"b2a1f0c9d8e7..."`
}

func (l LoginDeviceRequest) Validate() error {
	return GetValidator().Struct(l)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

func (r RefreshTokenRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== AUTHENTICATION RESPONSE DTOs ====================

type TokenPair struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn    int64  `json:"expires_in" example:"900"`
}

type RegisterDeviceResponse struct {
	UserID  string    `json:"user_id" example:"0190d4a0-..."`
	Created bool      `json:"created" example:"true"`
	Tokens  TokenPair `json:"tokens"`
}
