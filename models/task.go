package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Status is the completion token that prefixes every stored task line.
type Status string

const (
	StatusPending   Status = "[ ]"
	StatusCompleted Status = "[x]"
)

// IsValid reports whether s is one of the two recognised tokens.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task is one line of the task file, decoded.
type Task struct {
	Index       int    `json:"index" yaml:"index" toml:"index"`
	Status      Status `json:"status" yaml:"status" toml:"status"`
	Completed   bool   `json:"completed" yaml:"completed" toml:"completed"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// TaskList represents a collection of tasks.
type TaskList struct {
	Tasks      []Task `json:"tasks" yaml:"tasks" toml:"tasks"`
	TotalCount int    `json:"totalCount" yaml:"totalCount" toml:"totalCount"`
}

// TaskInput is the user-supplied description for add and edit.
type TaskInput struct {
	Description string `validate:"required,singleline"`
}

// ParseTask decodes a stored line. Lines that do not start with a status
// token keep an empty Status and the whole line as Description.
func ParseTask(index int, line string) Task {
	t := Task{Index: index, Description: line}
	for _, s := range []Status{StatusPending, StatusCompleted} {
		prefix := string(s)
		if line == prefix || strings.HasPrefix(line, prefix+" ") {
			t.Status = s
			t.Completed = s == StatusCompleted
			t.Description = strings.TrimPrefix(strings.TrimPrefix(line, prefix), " ")
			break
		}
	}
	return t
}

// String renders the task in its stored form.
func (t Task) String() string {
	if t.Status == "" {
		return t.Description
	}
	if t.Description == "" {
		return string(t.Status)
	}
	return FormatLine(t.Status, t.Description)
}

// FormatLine joins a status token and a description into a stored line.
func FormatLine(status Status, description string) string {
	return string(status) + " " + description
}

// ParseTasks decodes every line in order.
func ParseTasks(lines []string) []Task {
	tasks := make([]Task, 0, len(lines))
	for i, line := range lines {
		tasks = append(tasks, ParseTask(i, line))
	}
	return tasks
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("singleline", validateSingleLine)
}

// validateSingleLine rejects values that would break the one-task-per-line format.
func validateSingleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, describeValidationError(e))
	}
	return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
}

func describeValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s cannot be empty", strings.ToLower(e.Field()))
	case "singleline":
		return fmt.Sprintf("%s must fit on a single line", strings.ToLower(e.Field()))
	default:
		return fmt.Sprintf("Validation failed on field '%s': rule '%s'", e.StructNamespace(), e.Tag())
	}
}

// ValidateInput checks a description before it is written to the store.
func ValidateInput(description string) error {
	return ValidateStruct(TaskInput{Description: description})
}
