package request

type BloodCheckRequest struct {
	BloodGroup string `json:"blood_group" validate:"required"`
}
