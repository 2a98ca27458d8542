package entity

// Speciality is a free string tag, not a closed enum
type Doctor struct {
	ID         int64   `db:"id"`
	Name       string  `db:"name"`
	Speciality string  `db:"speciality"`
	Rating     float64 `db:"rating"`
	DistanceKm float64 `db:"distance_km"`
}
