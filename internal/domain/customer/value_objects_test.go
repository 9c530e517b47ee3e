//go:build unit

package customer_test

import (
	"testing"

	"sala-agenda/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "plus prefix", raw: "+34612345678", want: "+34612345678"},
		{name: "double zero prefix", raw: "0034612345678", want: "0034612345678"},
		{name: "interior whitespace ignored", raw: "0034 612 345 678", want: "0034612345678"},
		{name: "plus with spaces", raw: "+34 634 567 890", want: "+34634567890"},
		{name: "no country prefix", raw: "612345678", errIs: customer.ErrInvalidPhone},
		{name: "empty", raw: "", errIs: customer.ErrInvalidPhone},
		{name: "whitespace only", raw: "   ", errIs: customer.ErrInvalidPhone},
		{name: "too short after prefix", raw: "+341", errIs: customer.ErrInvalidPhone},
		{name: "letters", raw: "+34abc345678", errIs: customer.ErrInvalidPhone},
		{name: "bare plus", raw: "+", errIs: customer.ErrInvalidPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := customer.NewPhone(tc.raw)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Value())
		})
	}
}

func TestNewEmail(t *testing.T) {
	t.Run("accepts anything with @", func(t *testing.T) {
		e, err := customer.NewEmail("Maria@Example.com")
		require.NoError(t, err)
		assert.Equal(t, "maria@example.com", e.Value())
	})

	t.Run("rejects missing @", func(t *testing.T) {
		_, err := customer.NewEmail("maria.example.com")
		require.ErrorIs(t, err, customer.ErrInvalidEmail)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := customer.NewEmail("  ")
		require.ErrorIs(t, err, customer.ErrInvalidEmail)
	})
}

func TestNewPersonName(t *testing.T) {
	n, err := customer.NewPersonName("  Maria ")
	require.NoError(t, err)
	assert.Equal(t, "Maria", n.Value())

	_, err = customer.NewPersonName("   ")
	require.ErrorIs(t, err, customer.ErrInvalidName)
}
