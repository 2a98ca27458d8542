package entity

// BloodBank rows are reference data; UnitsAvailable may be 0 (out of stock,
// still listed).
type BloodBank struct {
	ID             int64   `db:"id"`
	Name           string  `db:"name"`
	BloodGroup     string  `db:"blood_group"`
	UnitsAvailable int     `db:"units_available"`
	DistanceKm     float64 `db:"distance_km"`
}
