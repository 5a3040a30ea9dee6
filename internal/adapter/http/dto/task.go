package dto

// TaskForm is the create/update form. Ids stay strings so that an empty
// executor choice is not confused with id 0.
type TaskForm struct {
	Name        string   `form:"name" binding:"required,max=255"`
	Description string   `form:"description"`
	Status      string   `form:"status" binding:"required,numeric"`
	Executor    string   `form:"executor" binding:"omitempty,numeric"`
	Labels      []string `form:"labels" binding:"omitempty,dive,numeric"`
}

// HasLabel is used by templates to keep multi-select choices checked.
func (f TaskForm) HasLabel(id uint64) bool {
	for _, label := range f.Labels {
		if label == formatID(id) {
			return true
		}
	}
	return false
}

type TaskFilterQuery struct {
	Status    string `form:"status"`
	Executor  string `form:"executor"`
	Label     string `form:"label"`
	SelfTasks string `form:"self_tasks"`
}

type TaskRow struct {
	ID        uint64
	Name      string
	Status    string
	Author    string
	Executor  string
	Labels    []string
	CreatedAt string
}

type TaskDetail struct {
	TaskRow
	AuthorID    uint64
	Description string
}
