package mapper

import (
	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

func ToTaskRows(tasks []domain.Task) []dto.TaskRow {
	rows := make([]dto.TaskRow, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, ToTaskRow(task))
	}
	return rows
}

func ToTaskRow(task domain.Task) dto.TaskRow {
	row := dto.TaskRow{
		ID:        task.ID,
		Name:      task.Name,
		Status:    task.Status.Name,
		Author:    task.Author.FullName(),
		CreatedAt: formatTime(task.CreatedAt),
		Labels:    make([]string, 0, len(task.Labels)),
	}

	if task.Executor != nil {
		row.Executor = task.Executor.FullName()
	}

	for _, label := range task.Labels {
		row.Labels = append(row.Labels, label.Name)
	}

	return row
}

func ToTaskDetail(task domain.Task) dto.TaskDetail {
	return dto.TaskDetail{
		TaskRow:     ToTaskRow(task),
		AuthorID:    task.Author.ID,
		Description: task.Description,
	}
}

// ToTaskForm prefills the update form from a stored task.
func ToTaskForm(task domain.Task) dto.TaskForm {
	form := dto.TaskForm{
		Name:        task.Name,
		Description: task.Description,
		Status:      formatID(task.Status.ID),
		Labels:      make([]string, 0, len(task.Labels)),
	}

	if task.Executor != nil {
		form.Executor = formatID(task.Executor.ID)
	}

	for _, label := range task.Labels {
		form.Labels = append(form.Labels, formatID(label.ID))
	}

	return form
}
