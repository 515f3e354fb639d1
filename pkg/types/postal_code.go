package types

import "regexp"

// postalCodePattern accepts alphanumerics with at most one embedded run of
// hyphens and whitespace.
var postalCodePattern = regexp.MustCompile(`^[a-zA-Z0-9]*(-|\s)*[a-zA-Z0-9]*$`)

// PostalCode is the character set of a postal code, such as "2000" or
// "SW1A 1AA". The zero value holds the empty character set, which is valid.
type PostalCode struct {
	characterSet string
}

// IsValidCharacterSet reports whether s is an acceptable postal-code
// character set.
func IsValidCharacterSet(s string) bool {
	return postalCodePattern.MatchString(s)
}

// NewPostalCode validates characterSet and returns a PostalCode holding it.
// Returns a *FormatError wrapping ErrFormat if the value is rejected.
func NewPostalCode(characterSet string) (PostalCode, error) {
	if !IsValidCharacterSet(characterSet) {
		return PostalCode{}, &FormatError{Field: FieldPostalCode, Value: characterSet}
	}
	return PostalCode{characterSet: characterSet}, nil
}

// MustPostalCode is like NewPostalCode but panics on an invalid value. It is
// intended for literals known to be valid.
func MustPostalCode(characterSet string) PostalCode {
	pc, err := NewPostalCode(characterSet)
	if err != nil {
		panic(err)
	}
	return pc
}

// CharacterSet returns the stored character set.
func (pc PostalCode) CharacterSet() string {
	return pc.characterSet
}

// SetCharacterSet validates and replaces the character set. On error the
// previous value is kept.
func (pc *PostalCode) SetCharacterSet(characterSet string) error {
	next, err := NewPostalCode(characterSet)
	if err != nil {
		return err
	}
	*pc = next
	return nil
}

// Equal reports whether both postal codes hold the same character set.
func (pc PostalCode) Equal(other PostalCode) bool {
	return pc.characterSet == other.characterSet
}

// Hash returns a digest that is equal for equal postal codes.
func (pc PostalCode) Hash() uint64 {
	return newDigest("PostalCode").str(pc.characterSet).sum()
}

func (pc PostalCode) String() string {
	return "PostalCode{characterSet=" + pc.characterSet + "}"
}
