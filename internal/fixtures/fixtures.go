// Package fixtures seeds the database from a YAML document.
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

// File is the fixture document. Tasks refer to other records by username or name.
type File struct {
	Users    []User   `yaml:"users"`
	Statuses []string `yaml:"statuses"`
	Labels   []string `yaml:"labels"`
	Tasks    []Task   `yaml:"tasks"`
}

type User struct {
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type Task struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	Executor    string   `yaml:"executor"`
	Status      string   `yaml:"status"`
	Labels      []string `yaml:"labels"`
}

// Summary counts the records created by Load.
type Summary struct {
	Users    int
	Statuses int
	Labels   int
	Tasks    int
}

func Parse(r io.Reader) (File, error) {
	var f File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return f, nil
}

func ParseFile(path string) (File, error) {
	file, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open fixtures: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

type Loader struct {
	userService   ports.UserService
	statusService ports.StatusService
	labelService  ports.LabelService
	taskService   ports.TaskService
}

func NewLoader(
	userService ports.UserService,
	statusService ports.StatusService,
	labelService ports.LabelService,
	taskService ports.TaskService,
) *Loader {
	return &Loader{
		userService:   userService,
		statusService: statusService,
		labelService:  labelService,
		taskService:   taskService,
	}
}

// Load creates the records of f. Users, statuses and labels that already exist
// under the same username or name are reused instead of duplicated.
func (l *Loader) Load(ctx context.Context, f File) (Summary, error) {
	var summary Summary

	users, err := l.existingUsers(ctx)
	if err != nil {
		return summary, err
	}
	for _, u := range f.Users {
		if _, ok := users[u.Username]; ok {
			continue
		}
		created, err := l.userService.RegisterUser(ctx, domain.RegisterUserInput{
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Password:  u.Password,
		})
		if err != nil {
			return summary, fmt.Errorf("user %q: %w", u.Username, err)
		}
		users[created.Username] = created.ID
		summary.Users++
	}

	statuses, err := l.existingStatuses(ctx)
	if err != nil {
		return summary, err
	}
	for _, name := range f.Statuses {
		if _, ok := statuses[name]; ok {
			continue
		}
		created, err := l.statusService.CreateStatus(ctx, name)
		if err != nil {
			return summary, fmt.Errorf("status %q: %w", name, err)
		}
		statuses[name] = created.ID
		summary.Statuses++
	}

	labels, err := l.existingLabels(ctx)
	if err != nil {
		return summary, err
	}
	for _, name := range f.Labels {
		if _, ok := labels[name]; ok {
			continue
		}
		created, err := l.labelService.CreateLabel(ctx, name)
		if err != nil {
			return summary, fmt.Errorf("label %q: %w", name, err)
		}
		labels[name] = created.ID
		summary.Labels++
	}

	for _, t := range f.Tasks {
		input, err := taskInput(t, users, statuses, labels)
		if err != nil {
			return summary, fmt.Errorf("task %q: %w", t.Name, err)
		}
		if _, err := l.taskService.CreateTask(ctx, input); err != nil {
			return summary, fmt.Errorf("task %q: %w", t.Name, err)
		}
		summary.Tasks++
	}

	return summary, nil
}

func taskInput(t Task, users, statuses, labels map[string]uint64) (domain.CreateTaskInput, error) {
	authorID, ok := users[t.Author]
	if !ok {
		return domain.CreateTaskInput{}, fmt.Errorf("unknown author %q: %w", t.Author, domain.ErrUserNotFound)
	}
	statusID, ok := statuses[t.Status]
	if !ok {
		return domain.CreateTaskInput{}, fmt.Errorf("unknown status %q: %w", t.Status, domain.ErrStatusNotFound)
	}

	input := domain.CreateTaskInput{
		Name:        t.Name,
		Description: t.Description,
		AuthorID:    authorID,
		StatusID:    statusID,
	}

	if t.Executor != "" {
		executorID, ok := users[t.Executor]
		if !ok {
			return domain.CreateTaskInput{}, fmt.Errorf("unknown executor %q: %w", t.Executor, domain.ErrUserNotFound)
		}
		input.ExecutorID = &executorID
	}

	for _, name := range t.Labels {
		labelID, ok := labels[name]
		if !ok {
			return domain.CreateTaskInput{}, fmt.Errorf("unknown label %q: %w", name, domain.ErrLabelNotFound)
		}
		input.LabelIDs = append(input.LabelIDs, labelID)
	}

	return input, nil
}

func (l *Loader) existingUsers(ctx context.Context) (map[string]uint64, error) {
	users, err := l.userService.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	ids := make(map[string]uint64, len(users))
	for _, u := range users {
		ids[u.Username] = u.ID
	}
	return ids, nil
}

func (l *Loader) existingStatuses(ctx context.Context) (map[string]uint64, error) {
	statuses, err := l.statusService.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	ids := make(map[string]uint64, len(statuses))
	for _, s := range statuses {
		ids[s.Name] = s.ID
	}
	return ids, nil
}

func (l *Loader) existingLabels(ctx context.Context) (map[string]uint64, error) {
	labels, err := l.labelService.ListLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	ids := make(map[string]uint64, len(labels))
	for _, label := range labels {
		ids[label.Name] = label.ID
	}
	return ids, nil
}
