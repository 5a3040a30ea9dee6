package mapper

import (
	"strconv"
	"time"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

const dateFormat = "02.01.2006 15:04"

func ToStatusRows(statuses []domain.Status) []dto.NamedRow {
	rows := make([]dto.NamedRow, 0, len(statuses))
	for _, status := range statuses {
		rows = append(rows, dto.NamedRow{ID: status.ID, Name: status.Name, CreatedAt: formatTime(status.CreatedAt)})
	}
	return rows
}

func ToLabelRows(labels []domain.Label) []dto.NamedRow {
	rows := make([]dto.NamedRow, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, dto.NamedRow{ID: label.ID, Name: label.Name, CreatedAt: formatTime(label.CreatedAt)})
	}
	return rows
}

func ToStatusChoices(statuses []domain.Status) []dto.Choice {
	choices := make([]dto.Choice, 0, len(statuses))
	for _, status := range statuses {
		choices = append(choices, dto.Choice{ID: status.ID, Name: status.Name})
	}
	return choices
}

func ToLabelChoices(labels []domain.Label) []dto.Choice {
	choices := make([]dto.Choice, 0, len(labels))
	for _, label := range labels {
		choices = append(choices, dto.Choice{ID: label.ID, Name: label.Name})
	}
	return choices
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
