package request

type SymptomCheckRequest struct {
	Description string `json:"description"`
}
