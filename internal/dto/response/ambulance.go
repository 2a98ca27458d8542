package response

type BookAmbulanceResponse struct {
	Status     string `json:"status"`
	BookingID  int64  `json:"booking_id"`
	ETAMinutes int    `json:"eta_minutes"`
	Message    string `json:"message"`
}
