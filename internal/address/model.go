package address

import (
	"regexp"

	"github.com/google/uuid"
)

// Address is a delivery address. The cart itself only stores the selected
// address id; ownership of the address book is external.
type Address struct {
	ID     uuid.UUID `json:"id"`
	UserID uint      `json:"user_id"`

	Name  string `json:"name"`
	Phone string `json:"phone"`

	Line1 string  `json:"line1"`
	Line2 *string `json:"line2,omitempty"`

	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`

	IsDefault bool `json:"is_default"`
}

type Input struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Line1   string  `json:"line1"`
	Line2   *string `json:"line2,omitempty"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Pincode string  `json:"pincode"`
}

var (
	phoneRegex   = regexp.MustCompile(`^\+?[0-9]{10,13}$`)
	pincodeRegex = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// Validate checks an address input before it is sent on to the address
// book.
func Validate(in Input) error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if !phoneRegex.MatchString(in.Phone) {
		return ErrPhoneInvalid
	}
	if in.Line1 == "" {
		return ErrLine1Required
	}
	if in.City == "" {
		return ErrCityRequired
	}
	if !pincodeRegex.MatchString(in.Pincode) {
		return ErrPincodeInvalid
	}
	return nil
}

// Default returns the default address from a list, falling back to the
// first one.
func Default(addrs []Address) *Address {
	if len(addrs) == 0 {
		return nil
	}
	for i := range addrs {
		if addrs[i].IsDefault {
			return &addrs[i]
		}
	}
	return &addrs[0]
}
