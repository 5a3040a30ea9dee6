package domain

import "time"

type Status struct {
	ID        uint64
	Name      string
	CreatedAt time.Time
}
