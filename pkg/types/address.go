package types

import "strconv"

// Address is a postal address. A street number of zero means the number is
// not recorded; any recorded number is strictly positive.
type Address struct {
	streetNumber int
	streetName   string
	cityName     string
	postalCode   PostalCode
}

// NewAddress validates streetNumber and builds an Address. The postal code is
// stored by value. Returns a *FormatError wrapping ErrFormat when
// streetNumber is not positive.
func NewAddress(streetNumber int, streetName, cityName string, postalCode PostalCode) (Address, error) {
	if !isValidStreetNumber(streetNumber) {
		return Address{}, streetNumberError(streetNumber)
	}
	return Address{
		streetNumber: streetNumber,
		streetName:   streetName,
		cityName:     cityName,
		postalCode:   postalCode,
	}, nil
}

func isValidStreetNumber(n int) bool {
	return n > 0
}

func streetNumberError(n int) error {
	return &FormatError{Field: FieldStreetNumber, Value: strconv.Itoa(n)}
}

// StreetNumber returns the street number, or 0 if none is recorded.
func (a Address) StreetNumber() int {
	return a.streetNumber
}

// SetStreetNumber validates and replaces the street number. On error the
// previous value is kept.
func (a *Address) SetStreetNumber(n int) error {
	if !isValidStreetNumber(n) {
		return streetNumberError(n)
	}
	a.streetNumber = n
	return nil
}

// StreetName returns the street name.
func (a Address) StreetName() string {
	return a.streetName
}

// SetStreetName replaces the street name.
func (a *Address) SetStreetName(name string) {
	a.streetName = name
}

// CityName returns the city name.
func (a Address) CityName() string {
	return a.cityName
}

// SetCityName replaces the city name.
func (a *Address) SetCityName(name string) {
	a.cityName = name
}

// PostalCode returns a copy of the postal code.
func (a Address) PostalCode() PostalCode {
	return a.postalCode
}

// SetPostalCode stores a copy of pc.
func (a *Address) SetPostalCode(pc PostalCode) {
	a.postalCode = pc
}

// IsZero reports whether no field of the address is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Equal reports whether all four fields match.
func (a Address) Equal(other Address) bool {
	return a.streetNumber == other.streetNumber &&
		a.streetName == other.streetName &&
		a.cityName == other.cityName &&
		a.postalCode.Equal(other.postalCode)
}

// Hash returns a digest that is equal for equal addresses.
func (a Address) Hash() uint64 {
	return newDigest("Address").
		u64(uint64(a.streetNumber)).
		str(a.streetName).
		str(a.cityName).
		u64(a.postalCode.Hash()).
		sum()
}

func (a Address) String() string {
	return "Address{streetNumber=" + strconv.Itoa(a.streetNumber) +
		", streetName=" + a.streetName +
		", cityName=" + a.cityName +
		", postalCode=" + a.postalCode.String() + "}"
}
