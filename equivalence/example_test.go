package equivalence_test

import (
	"fmt"

	"github.com/katalvlaran/unionfind/equivalence"
)

// ExampleMergeAccounts prints one line per merged person.
func ExampleMergeAccounts() {
	merged := equivalence.MergeAccounts([]equivalence.Account{
		{Name: "John", Emails: []string{"johnsmith@mail.com", "john_newyork@mail.com"}},
		{Name: "John", Emails: []string{"johnsmith@mail.com", "john00@mail.com"}},
		{Name: "Mary", Emails: []string{"mary@mail.com"}},
		{Name: "John", Emails: []string{"johnnybravo@mail.com"}},
	})
	for _, acc := range merged {
		fmt.Println(acc.Name, acc.Emails)
	}
	// Output:
	// John [john00@mail.com john_newyork@mail.com johnsmith@mail.com]
	// John [johnnybravo@mail.com]
	// Mary [mary@mail.com]
}

// ExampleSmallestStringWithSwaps sorts each swap class independently.
func ExampleSmallestStringWithSwaps() {
	s, _ := equivalence.SmallestStringWithSwaps("dcab", [][2]int{{0, 3}, {1, 2}})
	fmt.Println(s)
	// Output: bacd
}
