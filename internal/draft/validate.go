package draft

import (
	"regexp"
	"strings"

	"github.com/screenseat/movie-booking/internal/model"
)

// minPhoneDigits is the least number of characters a phone value must
// carry after trimming.  The check is syntactic only; nobody dials
// these numbers.
const minPhoneDigits = 7

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9 ()+\-]+$`)
)

// ValidateCustomerInfo checks the contact fields collected at the
// info stage.  It returns one message per failing field; an empty map
// means the info is acceptable.
func ValidateCustomerInfo(info model.CustomerInfo) FieldErrors {
	fe := FieldErrors{}
	if strings.TrimSpace(info.Name) == "" {
		fe["name"] = "name is required"
	}
	if strings.TrimSpace(info.Email) == "" {
		fe["email"] = "email is required"
	} else if !emailRe.MatchString(info.Email) {
		fe["email"] = "email is not valid"
	}
	phone := strings.TrimSpace(info.Phone)
	switch {
	case phone == "":
		fe["phone"] = "phone is required"
	case !phoneRe.MatchString(phone):
		fe["phone"] = "phone may contain only digits, spaces, +, - and parentheses"
	case len(phone) < minPhoneDigits:
		fe["phone"] = "phone is too short"
	}
	return fe
}
