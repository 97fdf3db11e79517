package order

import "strings"

// Filter projects the ledger onto a search query and a status filter.
// An order matches when the query is empty or appears
// case-insensitively in its AWB or destination, and the status filter
// is All (or empty) or equals its status exactly. Ledger order is
// preserved and the input slice is never modified.
func Filter(orders []Order, query, status string) []Order {
	q := strings.ToLower(strings.TrimSpace(query))

	matched := make([]Order, 0, len(orders))
	for _, o := range orders {
		if q != "" &&
			!strings.Contains(strings.ToLower(o.AWB), q) &&
			!strings.Contains(strings.ToLower(o.Destination), q) {
			continue
		}
		if status != "" && status != StatusAll && Status(status) != o.Status {
			continue
		}
		matched = append(matched, o)
	}
	return matched
}
