package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/model"
)

// validFields returns a complete and valid set of form values. Callers may change single values.
func validFields() map[string]string {
	return map[string]string{
		"first_name":     "Ann",
		"last_name":      "Lee",
		"phone":          "5551234567",
		"email":          "ann@example.com",
		"gender":         "female",
		"marital_status": "single",
	}
}

// fieldErrors runs the validation and expects it to fail with field errors.
func fieldErrors(t *testing.T, fields map[string]string) FieldErrors {
	t.Helper()
	s, err := Validate(fields)
	require.Error(t, err)
	assert.Nil(t, s)
	var fe FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors but got %T", err)
	return fe
}

func TestValidateAccepts(t *testing.T) {
	s, err := Validate(validFields())
	require.NoError(t, err)
	assert.Equal(t, "Ann", s.FirstName)
	assert.Equal(t, "Lee", s.LastName)
	assert.Equal(t, "5551234567", s.Phone)
	assert.Equal(t, "ann@example.com", s.Email)

	r := s.Record()
	assert.Equal(t, model.Female, r.Gender)
	assert.Equal(t, model.Single, r.MaritalStatus)
	assert.Empty(t, r.UniqueNumber)
}

// TestValidateNormalizes expects surrounding whitespace to be removed before the rules apply.
func TestValidateNormalizes(t *testing.T) {
	fields := validFields()
	fields["first_name"] = "  Mary Ann "
	fields["phone"] = " 5551234567\t"
	fields["email"] = " ann@example.com "

	s, err := Validate(fields)
	require.NoError(t, err)
	assert.Equal(t, "Mary Ann", s.FirstName)
	assert.Equal(t, "5551234567", s.Phone)
	assert.Equal(t, "ann@example.com", s.Email)
}

func TestValidateNames(t *testing.T) {
	invalidNames := []string{"Ann2", "Ann-Marie", "O'Brien", "Zoë", "Ann!", "@"}
	for _, name := range invalidNames {
		fields := validFields()
		fields["first_name"] = name
		fields["last_name"] = name
		fe := fieldErrors(t, fields)
		assert.Equal(t, "First name should contain only characters.", fe["first_name"], name)
		assert.Equal(t, "Last name should contain only characters.", fe["last_name"], name)
		assert.Len(t, fe, 2, name)
	}
}

func TestValidateNameLength(t *testing.T) {
	fields := validFields()
	fields["first_name"] = strings.Repeat("a", 50)
	_, err := Validate(fields)
	assert.NoError(t, err)

	fields["first_name"] = strings.Repeat("a", 51)
	fe := fieldErrors(t, fields)
	assert.Equal(t, "Ensure this value has at most 50 characters (it has 51).", fe["first_name"])
}

func TestValidatePhone(t *testing.T) {
	testCases := []struct {
		phone    string
		expected string
	}{
		{"12345", "Phone number should be at least 10 digits."},
		{"123456789", "Phone number should be at least 10 digits."},
		{"555-123-4567", "Phone number should contain only numbers."},
		{"+15551234567", "Phone number should contain only numbers."},
		{"555 123 4567", "Phone number should contain only numbers."},
		{"abcdefghij", "Phone number should contain only numbers."},
		{"1234567890123456", "Ensure this value has at most 15 characters (it has 16)."},
		{"", "This field is required."},
	}
	for _, tc := range testCases {
		fields := validFields()
		fields["phone"] = tc.phone
		fe := fieldErrors(t, fields)
		assert.Equal(t, tc.expected, fe["phone"], "phone: "+tc.phone)
		assert.Len(t, fe, 1)
	}

	for _, phone := range []string{"1234567890", "12345678901", "123456789012345"} {
		fields := validFields()
		fields["phone"] = phone
		_, err := Validate(fields)
		assert.NoError(t, err, "phone: "+phone)
	}
}

func TestValidateEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "ann@", "@example.com", "ann example.com"} {
		fields := validFields()
		fields["email"] = email
		fe := fieldErrors(t, fields)
		assert.Equal(t, "Enter a valid email address.", fe["email"], "email: "+email)
	}
}

func TestValidateChoices(t *testing.T) {
	fields := validFields()
	fields["gender"] = "other"
	fields["marital_status"] = "divorced"
	fe := fieldErrors(t, fields)
	assert.Equal(t, "Select a valid choice. other is not one of the available choices.", fe["gender"])
	assert.Equal(t, "Select a valid choice. divorced is not one of the available choices.", fe["marital_status"])

	fields["gender"] = "Female"
	fe = fieldErrors(t, fields)
	assert.Contains(t, fe, "gender")
}

// TestValidateCollectsAllErrors expects one message for every field when nothing was submitted.
func TestValidateCollectsAllErrors(t *testing.T) {
	fe := fieldErrors(t, map[string]string{})
	assert.Len(t, fe, len(FieldNames))
	for _, name := range FieldNames {
		assert.Equal(t, "This field is required.", fe[name], name)
	}
}

func TestValidateWhitespaceOnlyIsMissing(t *testing.T) {
	fields := validFields()
	fields["last_name"] = "   "
	fe := fieldErrors(t, fields)
	assert.Equal(t, "This field is required.", fe["last_name"])
}

func TestFieldErrorsError(t *testing.T) {
	fe := FieldErrors{
		"phone":      "Phone number should be at least 10 digits.",
		"first_name": "First name should contain only characters.",
	}
	assert.Equal(t,
		"invalid submission: first_name: First name should contain only characters.; phone: Phone number should be at least 10 digits.",
		fe.Error())
}
