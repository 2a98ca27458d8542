package request

// OTP length is checked in the service against the configured length,
// not with a static tag.
type LoginRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}
