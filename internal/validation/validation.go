// Package validation checks the fields of a submitted inquiry before anything is stored.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/model"
)

// FieldNames are the names of the form fields in the order in which the form displays them.
var FieldNames = []string{"first_name", "last_name", "phone", "email", "gender", "marital_status"}

// Submission holds the normalized values of an accepted inquiry.
type Submission struct {
	FirstName     string `form:"first_name"     validate:"required,max=50,personname"`
	LastName      string `form:"last_name"      validate:"required,max=50,personname"`
	Phone         string `form:"phone"          validate:"required,digits,min=10,max=15"`
	Email         string `form:"email"          validate:"required,max=254,email"`
	Gender        string `form:"gender"         validate:"required,oneof=male female"`
	MaritalStatus string `form:"marital_status" validate:"required,oneof=single married"`
}

// Record builds a new, not yet persisted record from the submission.
func (s *Submission) Record() model.Record {
	return model.Record{
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Phone:         s.Phone,
		Email:         s.Email,
		Gender:        model.Gender(s.Gender),
		MaritalStatus: model.MaritalStatus(s.MaritalStatus),
	}
}

// FieldErrors maps the name of each rejected field to the reason for the rejection.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

var (
	personNamePattern = regexp.MustCompile(`^[A-Za-z ]+$`)
	digitsPattern     = regexp.MustCompile(`^[0-9]+$`)
)

// fieldLabels are used in messages that name the field.
var fieldLabels = map[string]string{
	"first_name": "First name",
	"last_name":  "Last name",
	"phone":      "Phone number",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})
	v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks the raw form values. Values are trimmed of surrounding whitespace and a missing
// key counts as an empty value. If at least one field is rejected, the returned error is a
// FieldErrors with one message for every rejected field.
func Validate(fields map[string]string) (*Submission, error) {
	s := &Submission{
		FirstName:     strings.TrimSpace(fields["first_name"]),
		LastName:      strings.TrimSpace(fields["last_name"]),
		Phone:         strings.TrimSpace(fields["phone"]),
		Email:         strings.TrimSpace(fields["email"]),
		Gender:        strings.TrimSpace(fields["gender"]),
		MaritalStatus: strings.TrimSpace(fields["marital_status"]),
	}

	err := validate.Struct(s)
	if err == nil {
		return s, nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}
	fieldErrors := FieldErrors{}
	for _, fe := range validationErrors {
		if _, seen := fieldErrors[fe.Field()]; !seen {
			fieldErrors[fe.Field()] = message(fe)
		}
	}
	return nil, fieldErrors
}

// message turns a failed rule into the text shown next to the field.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).",
			fe.Param(), utf8.RuneCountInString(fe.Value().(string)))
	case "personname":
		return fieldLabels[fe.Field()] + " should contain only characters."
	case "digits":
		return fieldLabels[fe.Field()] + " should contain only numbers."
	case "min":
		return fmt.Sprintf("%s should be at least %s digits.", fieldLabels[fe.Field()], fe.Param())
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("Select a valid choice. %v is not one of the available choices.", fe.Value())
	}
	return "Enter a valid value."
}
