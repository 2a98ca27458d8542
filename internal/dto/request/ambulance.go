package request

type BookAmbulanceRequest struct {
	Phone          string `json:"phone"`
	PickupLocation string `json:"pickup_location" validate:"required"`
	Destination    string `json:"destination"`
}
