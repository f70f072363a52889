package domain

import "sort"

// Address is an encoded Bitcoin address from the Matcher's pool.
type Address string

// SortedUnique returns the distinct addresses in ascending order.
func SortedUnique(addresses []Address) []Address {
	seen := make(map[Address]struct{}, len(addresses))
	out := make([]Address, 0, len(addresses))
	for _, a := range addresses {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DailyAssignment is the canonical address set handed to every Payer on one calendar date.
type DailyAssignment struct {
	Date      string // YYYY-MM-DD
	Addresses []Address
}
