package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testAddress returns a valid address, failing the test on error.
func testAddress(t *testing.T, number int) Address {
	t.Helper()
	a, err := NewAddress(number, "", "", MustPostalCode(""))
	require.NoError(t, err)
	return a
}

// testPerson returns a person with the given forename and otherwise fixed
// fields.
func testPerson(t *testing.T, forename string) *Person {
	t.Helper()
	return NewPerson(NewName(forename, "", "Smith"), SexUnspecified, testAddress(t, 1), "")
}
