package model

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	pkgmodel "gitlab.com/dirk.krummacker/inquiry-service/pkg/model"
)

// Gender is the gender selected on the inquiry form.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Genders lists the accepted values in the order in which the form offers them.
var Genders = []Gender{Male, Female}

// Label is the human readable form of the value.
func (g Gender) Label() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	}
	return string(g)
}

// MaritalStatus is the marital status selected on the inquiry form.
type MaritalStatus string

const (
	Single  MaritalStatus = "single"
	Married MaritalStatus = "married"
)

// MaritalStatuses lists the accepted values in the order in which the form offers them.
var MaritalStatuses = []MaritalStatus{Single, Married}

func (m MaritalStatus) Label() string {
	switch m {
	case Single:
		return "Single"
	case Married:
		return "Married"
	}
	return string(m)
}

// Record is a single inquiry as it is stored in the database. Records are only ever created, never
// updated or deleted.
type Record struct {
	Id            int64         `db:"id"`
	FirstName     string        `db:"first_name"`
	LastName      string        `db:"last_name"`
	Phone         string        `db:"phone"`
	Email         string        `db:"email"`
	Gender        Gender        `db:"gender"`
	MaritalStatus MaritalStatus `db:"marital_status"`
	UniqueNumber  string        `db:"unique_number"`
	CreatedAt     time.Time     `db:"created_at"`
}

// RandomSource produces the random part of a unique number. Intn returns a value in [0, n).
type RandomSource interface {
	Intn(n int) int
}

type systemRandom struct{}

func (systemRandom) Intn(n int) int {
	return rand.IntN(n)
}

// SystemRandom returns a RandomSource backed by the runtime's random generator. It is safe for
// concurrent use.
func SystemRandom() RandomSource {
	return systemRandom{}
}

const (
	minSuffix = 1000
	maxSuffix = 9999
)

// AssignUniqueNumber derives the unique number from the names and a random four digit suffix:
// the first two letters of the first name and the first letter of the last name, upper case,
// followed by a number in [1000, 9999]. Shorter names contribute what they have. A record that
// already carries a unique number keeps it.
//
// Nothing here checks for collisions; the store's unique constraint does.
func (r *Record) AssignUniqueNumber(random RandomSource) {
	if r.UniqueNumber != "" {
		return
	}
	prefix := strings.ToUpper(leading(r.FirstName, 2) + leading(r.LastName, 1))
	suffix := minSuffix + random.Intn(maxSuffix-minSuffix+1)
	r.UniqueNumber = fmt.Sprintf("%s%04d", prefix, suffix)
}

// leading returns at most n characters from the beginning of s.
func leading(s string, n int) string {
	runes := []rune(s)
	if len(runes) < n {
		return s
	}
	return string(runes[:n])
}

// Salutation is the title used when addressing the person. Single men and any combination the
// form does not offer get "Mr".
func (r Record) Salutation() string {
	switch {
	case r.Gender == Female && r.MaritalStatus == Married:
		return "Mrs"
	case r.Gender == Male && r.MaritalStatus == Married:
		return "Mr"
	case r.Gender == Female && r.MaritalStatus == Single:
		return "Miss"
	default:
		return "Mr"
	}
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s - %s", r.FirstName, r.LastName, r.UniqueNumber)
}

// View converts the record into its public JSON representation.
func (r Record) View() pkgmodel.Record {
	return pkgmodel.Record{
		Id:            r.Id,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Phone:         r.Phone,
		Email:         r.Email,
		Gender:        string(r.Gender),
		MaritalStatus: string(r.MaritalStatus),
		Salutation:    r.Salutation(),
		UniqueNumber:  r.UniqueNumber,
		CreatedAt:     r.CreatedAt,
	}
}
