package problem

import (
	"fmt"

	"github.com/katalvlaran/unionfind/connectivity"
	"github.com/katalvlaran/unionfind/equivalence"
	"github.com/katalvlaran/unionfind/redundant"
	"github.com/katalvlaran/unionfind/virtualnode"
)

// Solve dispatches p to the solver for p.Kind.
func Solve(p Problem) (Result, error) {
	v, err := solve(p)
	if err != nil {
		return Result{}, fmt.Errorf("problem: %s: %w", p.Kind, err)
	}

	return Result{Kind: p.Kind, Value: v}, nil
}

func solve(p Problem) (any, error) {
	switch p.Kind {
	case KindComponents, KindNetwork, KindValidTree:
		edges, err := pairs(p.Edges)
		if err != nil {
			return nil, err
		}
		switch p.Kind {
		case KindComponents:
			return connectivity.CountComponents(p.N, edges)
		case KindNetwork:
			return connectivity.MinCablesToConnect(p.N, edges)
		default:
			return connectivity.ValidTree(p.N, edges)
		}
	case KindProvinces:
		return connectivity.CountProvinces(p.Matrix)
	case KindEquations:
		return connectivity.EquationsPossible(p.Equations)
	case KindRedundant, KindRedundantDirected:
		edges, err := pairs(p.Edges)
		if err != nil {
			return nil, err
		}
		detect := redundant.Undirected
		if p.Kind == KindRedundantDirected {
			detect = redundant.Directed
		}
		e, err := detect(edges)
		if err != nil {
			return nil, err
		}
		return e.Pair(), nil
	case KindAccounts:
		accounts, err := toAccounts(p.Accounts)
		if err != nil {
			return nil, err
		}
		return equivalence.MergeAccounts(accounts), nil
	case KindSwaps:
		ps, err := pairs(p.Pairs)
		if err != nil {
			return nil, err
		}
		return equivalence.SmallestStringWithSwaps(p.S, ps)
	case KindSlashes:
		return virtualnode.RegionsBySlashes(p.Grid)
	case KindStones:
		stones, err := pairs(p.Stones)
		if err != nil {
			return nil, err
		}
		return virtualnode.RemoveStones(stones), nil
	default:
		return nil, ErrUnknownKind
	}
}

func pairs(raw [][]int) ([][2]int, error) {
	out := make([][2]int, len(raw))
	for i, r := range raw {
		if len(r) != 2 {
			return nil, fmt.Errorf("entry %d %v: %w", i, r, ErrBadPair)
		}
		out[i] = [2]int{r[0], r[1]}
	}

	return out, nil
}

// toAccounts converts rows of the form [name, email...] into Accounts.
func toAccounts(rows [][]string) ([]equivalence.Account, error) {
	out := make([]equivalence.Account, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("account %d: %w", i, ErrBadAccount)
		}
		out[i] = equivalence.Account{Name: row[0], Emails: row[1:]}
	}

	return out, nil
}
