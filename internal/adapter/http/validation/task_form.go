package validation

import (
	"strconv"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

// BuildTaskInput converts a bound and validated task form. Author is not part
// of the form; callers add it from the session on create.
func BuildTaskInput(form dto.TaskForm) (domain.UpdateTaskInput, bool) {
	statusID, ok := ParseID(form.Status)
	if !ok {
		return domain.UpdateTaskInput{}, false
	}

	var executorID *uint64
	if form.Executor != "" {
		id, ok := ParseID(form.Executor)
		if !ok {
			return domain.UpdateTaskInput{}, false
		}
		executorID = &id
	}

	labelIDs := make([]uint64, 0, len(form.Labels))
	for _, raw := range form.Labels {
		if raw == "" {
			continue
		}
		id, ok := ParseID(raw)
		if !ok {
			return domain.UpdateTaskInput{}, false
		}
		labelIDs = append(labelIDs, id)
	}

	return domain.UpdateTaskInput{
		Name:        form.Name,
		Description: form.Description,
		ExecutorID:  executorID,
		StatusID:    statusID,
		LabelIDs:    labelIDs,
	}, true
}

// BuildTaskFilter ignores filter values that are not valid ids.
func BuildTaskFilter(query dto.TaskFilterQuery, currentUserID uint64) domain.TaskFilter {
	var filter domain.TaskFilter
	if id, ok := ParseID(query.Status); ok {
		filter.StatusID = &id
	}
	if id, ok := ParseID(query.Executor); ok {
		filter.ExecutorID = &id
	}
	if id, ok := ParseID(query.Label); ok {
		filter.LabelID = &id
	}
	if isChecked(query.SelfTasks) && currentUserID != 0 {
		filter.AuthorID = &currentUserID
	}
	return filter
}

// ParseID parses a positive decimal record id.
func ParseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func isChecked(value string) bool {
	switch value {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}
