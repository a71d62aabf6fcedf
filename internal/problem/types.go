package problem

import (
	"errors"
	"sort"
)

var (
	// ErrUnknownKind indicates a problem kind with no solver.
	ErrUnknownKind = errors.New("problem: unknown kind")
	// ErrBadPair indicates an edge, pair or stone that is not exactly two integers.
	ErrBadPair = errors.New("problem: pair must have exactly two elements")
	// ErrBadAccount indicates an account row without a name.
	ErrBadAccount = errors.New("problem: account row must start with a name")
	// ErrUnknownFormat indicates a file extension or format name that cannot be decoded.
	ErrUnknownFormat = errors.New("problem: unknown format")
)

// Kind names a problem family.
type Kind string

// Supported kinds.
const (
	KindComponents        Kind = "components"
	KindProvinces         Kind = "provinces"
	KindNetwork           Kind = "network"
	KindEquations         Kind = "equations"
	KindValidTree         Kind = "valid-tree"
	KindRedundant         Kind = "redundant"
	KindRedundantDirected Kind = "redundant-directed"
	KindAccounts          Kind = "accounts"
	KindSwaps             Kind = "swaps"
	KindSlashes           Kind = "slashes"
	KindStones            Kind = "stones"
)

var descriptions = map[Kind]string{
	KindComponents:        "count connected components over 0..n-1",
	KindProvinces:         "count provinces in an adjacency matrix",
	KindNetwork:           "minimum cable moves to connect n machines",
	KindEquations:         "check satisfiability of a==b / a!=b equations",
	KindValidTree:         "check whether n nodes and edges form a tree",
	KindRedundant:         "find the extra edge in an undirected tree",
	KindRedundantDirected: "find the extra edge in a rooted directed tree",
	KindAccounts:          "merge accounts that share an email",
	KindSwaps:             "smallest string reachable with index swaps",
	KindSlashes:           "count regions cut by slashes in a grid",
	KindStones:            "most stones removable sharing a row or column",
}

// Kinds returns every supported kind in alphabetical order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(descriptions))
	for k := range descriptions {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Describe returns a one-line description of k, or "" if k is unknown.
func Describe(k Kind) string { return descriptions[k] }

// Problem is one problem instance. Only the fields read by Kind need be set.
type Problem struct {
	Kind      Kind       `json:"kind" yaml:"kind" toml:"kind"`
	N         int        `json:"n,omitempty" yaml:"n,omitempty" toml:"n,omitempty"`
	Edges     [][]int    `json:"edges,omitempty" yaml:"edges,omitempty" toml:"edges,omitempty"`
	Matrix    [][]int    `json:"matrix,omitempty" yaml:"matrix,omitempty" toml:"matrix,omitempty"`
	Equations []string   `json:"equations,omitempty" yaml:"equations,omitempty" toml:"equations,omitempty"`
	Accounts  [][]string `json:"accounts,omitempty" yaml:"accounts,omitempty" toml:"accounts,omitempty"`
	S         string     `json:"s,omitempty" yaml:"s,omitempty" toml:"s,omitempty"`
	Pairs     [][]int    `json:"pairs,omitempty" yaml:"pairs,omitempty" toml:"pairs,omitempty"`
	Grid      []string   `json:"grid,omitempty" yaml:"grid,omitempty" toml:"grid,omitempty"`
	Stones    [][]int    `json:"stones,omitempty" yaml:"stones,omitempty" toml:"stones,omitempty"`
}

// Result is the answer to a Problem. Value holds an int, bool, string,
// [2]int edge or []equivalence.Account depending on Kind.
type Result struct {
	Kind  Kind `json:"kind" yaml:"kind"`
	Value any  `json:"value" yaml:"value"`
}
