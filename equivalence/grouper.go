package equivalence

import "github.com/katalvlaran/unionfind/disjointset"

// Grouper collects keys into equivalence classes and tracks, for every key,
// the label it was first seen with. Labels are not changed by later merges.
type Grouper[K comparable] struct {
	set    *disjointset.Keyed[K]
	labels []string // labels[id] for the key with that dense ID
}

// NewGrouper returns an empty Grouper.
func NewGrouper[K comparable]() *Grouper[K] {
	return &Grouper[K]{set: disjointset.NewKeyed[K]()}
}

// Add registers k under label if k is new and returns its dense ID.
func (g *Grouper[K]) Add(label string, k K) int {
	id := g.set.ID(k)
	if id == len(g.labels) {
		g.labels = append(g.labels, label)
	}

	return id
}

// AddGroup registers every key under label and joins them all with the first
// one. It is a no-op for an empty key list.
func (g *Grouper[K]) AddGroup(label string, keys ...K) {
	if len(keys) == 0 {
		return
	}
	first := g.Add(label, keys[0])
	for _, k := range keys[1:] {
		g.Add(label, k)
		g.set.Union(g.set.Key(first), k)
	}
}

// Union joins the classes of a and b. Keys seen for the first time get an
// empty label.
func (g *Grouper[K]) Union(a, b K) bool {
	g.Add("", a)
	g.Add("", b)

	return g.set.Union(a, b)
}

// Label returns the label k was first seen with.
func (g *Grouper[K]) Label(k K) (string, bool) {
	id, ok := g.set.Lookup(k)
	if !ok {
		return "", false
	}

	return g.labels[id], true
}

// Same reports whether a and b are known and in the same class.
func (g *Grouper[K]) Same(a, b K) bool { return g.set.Connected(a, b) }

// Len reports how many distinct keys have been added.
func (g *Grouper[K]) Len() int { return g.set.Len() }

// Groups returns every class in first-seen order; each class lists its keys in
// first-seen order, so class[0] is the earliest key of the class.
func (g *Grouper[K]) Groups() [][]K { return g.set.Groups() }
