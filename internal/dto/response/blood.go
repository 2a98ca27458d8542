package response

import (
	"nightcare/internal/data/entity"
)

type BloodBankResponse struct {
	Name           string  `json:"name"`
	UnitsAvailable int     `json:"units_available"`
	DistanceKm     float64 `json:"distance_km"`
}

type BloodCheckResponse struct {
	BloodGroup string              `json:"blood_group"`
	Banks      []BloodBankResponse `json:"banks"`
}

func BloodBanksToResponse(bloodGroup string, banks []*entity.BloodBank) *BloodCheckResponse {
	// a group with no stock anywhere still answers with an empty list
	list := make([]BloodBankResponse, 0, len(banks))
	for _, bank := range banks {
		list = append(list, BloodBankResponse{
			Name:           bank.Name,
			UnitsAvailable: bank.UnitsAvailable,
			DistanceKm:     bank.DistanceKm,
		})
	}

	return &BloodCheckResponse{
		BloodGroup: bloodGroup,
		Banks:      list,
	}
}
