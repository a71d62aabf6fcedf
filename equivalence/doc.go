// Package equivalence builds equivalence classes over keys that are only
// discovered while reading the input, then re-materializes the classes as
// grouped output.
//
// Grouper[K] assigns each new key a dense ID on first sight, grows a
// slice-backed union-find to match and remembers the label (for example an
// account holder's name) under which the key was first seen.
//
// Two solvers are built on it:
//
//   - MergeAccounts joins accounts that share any email address and emits
//     each person once with a sorted, de-duplicated email list.
//   - SmallestStringWithSwaps treats string positions as keys, joins the two
//     positions of every allowed swap and, per class, hands the smallest
//     characters to the smallest positions. Any permutation inside a class
//     is reachable by repeated swaps and classes never interact, so the
//     per-class greedy fill is the global lexicographic minimum. Input must
//     be ASCII; positions are byte offsets.
package equivalence
