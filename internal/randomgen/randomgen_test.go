package randomgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/validation"
)

// TestPickSubmissionIsValid expects every generated submission to pass the form validation.
func TestPickSubmissionIsValid(t *testing.T) {
	for i := 0; i < 1000; i++ {
		fields := PickSubmission()
		_, err := validation.Validate(fields)
		assert.NoError(t, err, "%v", fields)
	}
}

func TestPickPhoneLength(t *testing.T) {
	for i := 0; i < 1000; i++ {
		phone := PickPhone()
		assert.GreaterOrEqual(t, len(phone), 10)
		assert.LessOrEqual(t, len(phone), 15)
	}
}
