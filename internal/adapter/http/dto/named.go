package dto

import "strconv"

type LabelForm struct {
	Name string `form:"name" binding:"required,max=50"`
}

type StatusForm struct {
	Name string `form:"name" binding:"required,max=100"`
}

// NamedRow is a list row for labels and statuses.
type NamedRow struct {
	ID        uint64
	Name      string
	CreatedAt string
}

// Choice is one option of a select input.
type Choice struct {
	ID   uint64
	Name string
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
