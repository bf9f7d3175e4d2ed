package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("juan.perez@ejemplo.com"))
	assert.True(t, IsValidEmail("maria_r+nomina@parroquia.org"))
	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2023-07-01")
	assert.True(t, ok)
	assert.Equal(t, 2023, d.Year())

	_, ok = IsValidDate("01/07/2023")
	assert.False(t, ok)

	_, ok = IsValidDate("2023-13-40")
	assert.False(t, ok)
}

func TestIsValidNIT(t *testing.T) {
	assert.True(t, IsValidNIT("123456789-0"))
	assert.False(t, IsValidNIT("123456789"))
	assert.False(t, IsValidNIT("12-3"))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("admin"))
	assert.True(t, IsValidUsername("empleado1"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "period_name", Message: "period_name is required"},
		{Field: "end_date", Message: "end_date must not be before start_date"},
	}
	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "period_name is required", m["period_name"])
	assert.Contains(t, errs.Error(), "end_date")
}
