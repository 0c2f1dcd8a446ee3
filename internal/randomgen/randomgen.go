// Package randomgen picks plausible person data for load tests and integration tests. All names
// consist of letters only, so they pass the form validation.
package randomgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

var firstNames = []string{
	"Adam", "Ann", "Berta", "Carla", "David", "Dirk", "Erika", "Felix", "Greta", "Hans",
	"Ines", "Jana", "Karel", "Lena", "Marek", "Nina", "Otto", "Pavla", "Rudi", "Tereza",
}

var lastNames = []string{
	"Dvorak", "Fischer", "Horak", "Krummacker", "Lee", "Mustermann", "Novak", "Schmidt",
	"Svoboda", "Wagner", "Weber", "Zeman",
}

func PickFirstName() string {
	return firstNames[rand.IntN(len(firstNames))]
}

func PickLastName() string {
	return lastNames[rand.IntN(len(lastNames))]
}

// PickPhone returns a phone number of ten to fifteen digits.
func PickPhone() string {
	digits := 10 + rand.IntN(6)
	var b strings.Builder
	b.WriteByte(byte('1' + rand.IntN(9)))
	for i := 1; i < digits; i++ {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}

func PickEmail(firstName, lastName string) string {
	return fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(firstName), strings.ToLower(lastName), rand.IntN(1000))
}

func PickGender() string {
	return []string{"male", "female"}[rand.IntN(2)]
}

func PickMaritalStatus() string {
	return []string{"single", "married"}[rand.IntN(2)]
}

// PickSubmission returns a complete and valid set of form values.
func PickSubmission() map[string]string {
	first, last := PickFirstName(), PickLastName()
	return map[string]string{
		"first_name":     first,
		"last_name":      last,
		"phone":          PickPhone(),
		"email":          PickEmail(first, last),
		"gender":         PickGender(),
		"marital_status": PickMaritalStatus(),
	}
}
