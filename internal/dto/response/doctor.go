package response

import (
	"nightcare/internal/data/entity"
)

type DoctorResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Speciality string  `json:"speciality"`
	Rating     float64 `json:"rating"`
	DistanceKm float64 `json:"distance_km"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

func DoctorsToResponse(doctors []*entity.Doctor) *DoctorListResponse {
	// empty list marshals as [], not null
	list := make([]DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		list = append(list, DoctorResponse{
			ID:         doctor.ID,
			Name:       doctor.Name,
			Speciality: doctor.Speciality,
			Rating:     doctor.Rating,
			DistanceKm: doctor.DistanceKm,
		})
	}

	return &DoctorListResponse{Doctors: list}
}
