package model

import (
	"math/rand/v2"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom always returns the same value, clamped to the requested range.
type fixedRandom int

func (f fixedRandom) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

// TestSalutation checks every combination the form can produce plus an unknown one.
func TestSalutation(t *testing.T) {
	testCases := []struct {
		gender        Gender
		maritalStatus MaritalStatus
		expected      string
	}{
		{Female, Married, "Mrs"},
		{Male, Married, "Mr"},
		{Female, Single, "Miss"},
		{Male, Single, "Mr"},
		{Gender("other"), MaritalStatus("divorced"), "Mr"},
	}
	for _, tc := range testCases {
		t.Run(string(tc.gender)+"/"+string(tc.maritalStatus), func(t *testing.T) {
			r := Record{Gender: tc.gender, MaritalStatus: tc.maritalStatus}
			assert.Equal(t, tc.expected, r.Salutation())
		})
	}
}

func TestString(t *testing.T) {
	r := Record{FirstName: "Ann", LastName: "Lee", UniqueNumber: "ANL4711"}
	assert.Equal(t, "Ann Lee - ANL4711", r.String())
}

// TestAssignUniqueNumber checks prefix and suffix for the lowest and highest random values.
func TestAssignUniqueNumber(t *testing.T) {
	testCases := []struct {
		name      string
		firstName string
		lastName  string
		random    fixedRandom
		expected  string
	}{
		{"lowest suffix", "Ann", "Lee", 0, "ANL1000"},
		{"highest suffix", "Ann", "Lee", 8999, "ANL9999"},
		{"lower case names", "erika", "mustermann", 3711, "ERM4711"},
		{"single letter first name", "A", "Lee", 0, "AL1000"},
		{"name with space", "Jo Ann", "van Dyke", 0, "JOV1000"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := Record{FirstName: tc.firstName, LastName: tc.lastName}
			r.AssignUniqueNumber(tc.random)
			assert.Equal(t, tc.expected, r.UniqueNumber)
		})
	}
}

// TestAssignUniqueNumberKeepsExisting expects that a unique number is computed only once.
func TestAssignUniqueNumberKeepsExisting(t *testing.T) {
	r := Record{FirstName: "Ann", LastName: "Lee", UniqueNumber: "ANL4711"}
	r.AssignUniqueNumber(fixedRandom(0))
	assert.Equal(t, "ANL4711", r.UniqueNumber)
}

// TestAssignUniqueNumberRange draws many suffixes from a real generator and expects all of them
// to be four digit numbers in the documented range.
func TestAssignUniqueNumberRange(t *testing.T) {
	random := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10000; i++ {
		r := Record{FirstName: "Ann", LastName: "Lee"}
		r.AssignUniqueNumber(pcgSource{random})
		require.Len(t, r.UniqueNumber, 7)
		assert.Equal(t, "ANL", r.UniqueNumber[:3])
		suffix, err := strconv.Atoi(r.UniqueNumber[3:])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 1000)
		assert.LessOrEqual(t, suffix, 9999)
	}
}

type pcgSource struct {
	r *rand.Rand
}

func (p pcgSource) Intn(n int) int {
	return p.r.IntN(n)
}

func TestSystemRandom(t *testing.T) {
	r := Record{FirstName: "Ann", LastName: "Lee"}
	r.AssignUniqueNumber(SystemRandom())
	assert.Regexp(t, `^ANL[1-9][0-9]{3}$`, r.UniqueNumber)
}

func TestView(t *testing.T) {
	created := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	r := Record{
		Id:            7,
		FirstName:     "Ann",
		LastName:      "Lee",
		Phone:         "5551234567",
		Email:         "ann@example.com",
		Gender:        Female,
		MaritalStatus: Single,
		UniqueNumber:  "ANL4711",
		CreatedAt:     created,
	}
	view := r.View()
	assert.Equal(t, int64(7), view.Id)
	assert.Equal(t, "female", view.Gender)
	assert.Equal(t, "single", view.MaritalStatus)
	assert.Equal(t, "Miss", view.Salutation)
	assert.Equal(t, "ANL4711", view.UniqueNumber)
	assert.Equal(t, created, view.CreatedAt)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Female", Female.Label())
	assert.Equal(t, "Married", Married.Label())
	assert.Equal(t, "other", Gender("other").Label())
}
