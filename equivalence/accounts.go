package equivalence

import (
	"sort"
)

// Account is one record: a holder's name and the email addresses on file.
type Account struct {
	Name   string   `json:"name" yaml:"name" toml:"name"`
	Emails []string `json:"emails" yaml:"emails" toml:"emails"`
}

// MergeAccounts merges every pair of accounts that share an email address,
// directly or through a chain of shared addresses.
//
// Each returned Account holds the class's emails sorted and unique, under the
// name of the class's earliest email. Accounts without emails are dropped.
// Output is ordered by name, then by first email.
//
// Steps:
//  1. Feed each account's emails to a Grouper as one group labelled with
//     the account name; the first label seen for an email sticks.
//  2. Collect the equivalence classes.
//  3. Per class: look up the name, sort the emails.
//  4. Sort the accounts for deterministic output.
//
// Complexity: O(E·log E) for E emails in total, dominated by the sorts.
func MergeAccounts(accounts []Account) []Account {
	// 1) Union emails within each account.
	g := NewGrouper[string]()
	for _, acc := range accounts {
		g.AddGroup(acc.Name, acc.Emails...)
	}

	// 2) Classes in first-seen order.
	groups := g.Groups()
	out := make([]Account, 0, len(groups))
	for _, emails := range groups {
		// 3) Keys in a class are already unique; only order needs fixing.
		name, _ := g.Label(emails[0])
		sorted := append([]string(nil), emails...)
		sort.Strings(sorted)
		out = append(out, Account{Name: name, Emails: sorted})
	}
	// 4) Name, then first email.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Emails[0] < out[j].Emails[0]
	})

	return out
}
