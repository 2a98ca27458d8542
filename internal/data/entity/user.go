package entity

import "time"

type User struct {
	ID        int64     `db:"id"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}
