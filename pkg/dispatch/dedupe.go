package dispatch

import "strings"

type repeatKey struct {
	taskTypeID  string
	productType string
	addressID   string
	companyID   string
}

// FilterDuplicates compresses a list of "repeat this order" candidates into a
// non-redundant suggestion list. Candidates are identical when their task
// type, normalized product type, address, and company all match; only the
// first of each identity survives, in the original relative order.
//
// This dedupes a customer's order history for suggestions. It is not meant
// for deduplicating live orders.
func FilterDuplicates(candidates []Order) []Order {
	seen := make(map[repeatKey]struct{}, len(candidates))
	kept := make([]Order, 0, len(candidates))
	for _, candidate := range candidates {
		key := repeatKey{
			taskTypeID:  candidate.TaskTypeID,
			productType: normalizeProductType(candidate.ProductType),
			addressID:   candidate.AddressID,
			companyID:   candidate.CompanyID,
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, candidate)
	}
	return kept
}

func normalizeProductType(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
