package domain

import "time"

type Label struct {
	ID        uint64
	Name      string
	CreatedAt time.Time
}
