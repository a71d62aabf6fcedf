package connectivity

import (
	"fmt"

	"github.com/katalvlaran/unionfind/disjointset"
)

// EquationsPossible reports whether every equation can hold simultaneously.
// Each equation has length 4: a lowercase variable, "==" or "!=", and a
// second lowercase variable.
//
// Equalities are applied first over a fixed 26-symbol universe; then each
// inequality fails the whole set as soon as its two symbols share a root.
// Malformed input is reported before any union work.
func EquationsPossible(equations []string) (bool, error) {
	for i, eq := range equations {
		if !wellFormed(eq) {
			return false, fmt.Errorf("equation %d %q: %w", i, eq, ErrMalformedEquation)
		}
	}

	d := disjointset.New(Alphabet)
	for _, eq := range equations {
		if eq[1] == '=' {
			d.Union(int(eq[0]-'a'), int(eq[3]-'a'))
		}
	}
	for _, eq := range equations {
		if eq[1] == '!' && d.Connected(int(eq[0]-'a'), int(eq[3]-'a')) {
			return false, nil
		}
	}

	return true, nil
}

func wellFormed(eq string) bool {
	if len(eq) != 4 || eq[2] != '=' || (eq[1] != '=' && eq[1] != '!') {
		return false
	}

	return isLower(eq[0]) && isLower(eq[3])
}

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
