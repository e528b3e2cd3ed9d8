package frontend

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_employees/entities"
	"go.uber.org/multierr"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

var fieldLabels = map[string]string{
	string(entities.EmployeeName):        "name",
	string(entities.EmployeeEmail):       "email",
	string(entities.EmployeeMobile):      "mobile",
	string(entities.EmployeeDesignation): "designation",
	string(entities.EmployeeGender):      "gender",
	string(entities.EmployeeCourses):     "course",
	string(entities.EmployeeImage):       "image",
	usernameField:                        "username",
	passwordField:                        "password",
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsOnly.MatchString(fl.Field().String())
	})

	return validate
}

// validateDraft checks the draft against the rules of the given form.
// All failures are returned together
func (r *frontendRouter) validateDraft(draft entities.EmployeeDraft, mode formMode) error {
	var result error

	if err := r.validate.Struct(draft); err != nil {
		result = multierr.Append(result, validationMessages(err))
	}

	if mode == editMode {
		if draft.Email != "" {
			if err := r.validate.Var(draft.Email, "contains=@"); err != nil {
				result = multierr.Append(result, errors.New("email must contain @"))
			}
		}
		if draft.Mobile != "" {
			if err := r.validate.Var(draft.Mobile, "digits"); err != nil {
				result = multierr.Append(result, errors.New("mobile must contain digits only"))
			}
		}
	}

	if mode == createMode && draft.Image.IsEmpty() {
		result = multierr.Append(result, errors.New("image is required"))
	}

	return result
}

// validationMessages turns validator errors into readable errors, one per failed field
func validationMessages(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var result error
	for _, fieldErr := range validationErrs {
		result = multierr.Append(result, errors.New(fieldMessage(fieldErr)))
	}
	return result
}

func fieldMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	if idx := strings.Index(field, "["); idx >= 0 {
		field = field[:idx]
	}
	label, ok := fieldLabels[field]
	if !ok {
		label = strings.ToLower(field)
	}

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "oneof":
		if fieldErr.Value() == "" {
			return fmt.Sprintf("%s is required", label)
		}
		return fmt.Sprintf("%s must be one of %s", label, strings.Join(strings.Fields(fieldErr.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// errorMessages lists the individual messages of an aggregated validation error
func errorMessages(err error) []string {
	errs := multierr.Errors(err)
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Error())
	}
	return messages
}
