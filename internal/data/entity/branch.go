package entity

import "time"

type Branch struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Location  *string   `db:"location"`
	CreatedAt time.Time `db:"created_at"`
}
