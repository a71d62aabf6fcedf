package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionfind/connectivity"
)

// TestEquationsPossible exercises satisfiable and contradictory systems.
func TestEquationsPossible(t *testing.T) {
	cases := []struct {
		name string
		eqs  []string
		want bool
	}{
		{"direct contradiction", []string{"a==b", "b!=a"}, false},
		{"symmetric", []string{"b==a", "a==b"}, true},
		{"transitive", []string{"a==b", "b==c", "a==c"}, true},
		{"transitive contradiction", []string{"a==b", "b!=c", "c==a"}, false},
		{"self inequality", []string{"c==c", "b==d", "x!=z"}, true},
		{"a!=a", []string{"a!=a"}, false},
		{"empty", nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := connectivity.EquationsPossible(tc.eqs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestEquationsPossible_Malformed rejects anything outside "x==y" / "x!=y".
func TestEquationsPossible_Malformed(t *testing.T) {
	for _, eq := range []string{"a=b", "A==b", "a<=b", "a==bb", "a!!b"} {
		_, err := connectivity.EquationsPossible([]string{"a==b", eq})
		assert.ErrorIs(t, err, connectivity.ErrMalformedEquation, eq)
	}
}
