package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/task"
	"github.com/jsamuelsen11/todosync/internal/domain/tasklist"
)

const msgRequired = domain.MsgRequired

// validate is shared by every request DTO. Field names in errors are the
// JSON names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of r and converts failures to a
// *domain.ValidationError.
func validateStruct(r any) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = tagMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// TitleRequest is the JSON body for creating or renaming a list and for
// creating a task. Only presence is checked here; title rules are enforced
// by the operation itself so that a bad title is a rejected operation.
type TitleRequest struct {
	Title *string `json:"title" validate:"required"`
}

// Validate checks that the title is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *TitleRequest) Validate() error {
	return validateStruct(r)
}

// FilterRequest is the JSON body for changing a list's view filter.
type FilterRequest struct {
	Filter string `json:"filter" validate:"required,oneof=all active completed"`
}

// Validate checks that the filter is a known value.
// Returns a *domain.ValidationError if any checks fail.
func (r *FilterRequest) Validate() error {
	return validateStruct(r)
}

// ToFilter returns the domain filter.
func (r *FilterRequest) ToFilter() tasklist.Filter {
	return tasklist.Filter(r.Filter)
}

// UpdateTaskRequest is the JSON body for updating a task.
// All fields are optional; nil means "do not change this field.".
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *int       `json:"status,omitempty" validate:"omitempty,min=0,max=3"`
	Priority    *int       `json:"priority,omitempty" validate:"omitempty,min=0,max=4"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// Validate checks that provided enums are in range and that at least one
// field is set. Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.ToPatch().IsEmpty() {
		return &domain.ValidationError{Fields: map[string]string{"body": "must set at least one field"}}
	}
	return nil
}

// ToPatch converts the request to a domain patch.
func (r *UpdateTaskRequest) ToPatch() task.Patch {
	p := task.Patch{
		Title:       r.Title,
		Description: r.Description,
		StartDate:   r.StartDate,
		Deadline:    r.Deadline,
	}
	if r.Status != nil {
		s := task.Status(*r.Status)
		p.Status = &s
	}
	if r.Priority != nil {
		pr := task.Priority(*r.Priority)
		p.Priority = &pr
	}
	return p
}
