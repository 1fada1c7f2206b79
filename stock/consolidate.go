package stock

import "encoding/json"

// groupResponse is the decoded shape of one batch response:
// symbol -> endpoint -> raw value.
type groupResponse map[string]map[string]json.RawMessage

// consolidate merges the per-group batch responses into one mapping per
// symbol. It is a pure merge: inputs are never mutated and a fresh map is
// returned.
//
// The first group is authoritative for symbol existence; a symbol missing
// there fails with *SymbolNotFoundError. Entries from later groups extend the
// first group's mapping and never replace existing endpoints (the groups are
// disjoint by construction, so no collision should occur).
func consolidate(symbols []string, groups []groupResponse) (map[string]map[string]json.RawMessage, error) {
	out := make(map[string]map[string]json.RawMessage, len(symbols))

	for _, sym := range symbols {
		first, ok := groups[0][sym]
		if !ok {
			return nil, &SymbolNotFoundError{Symbol: sym}
		}

		merged := make(map[string]json.RawMessage, len(first))
		for endpoint, v := range first {
			merged[endpoint] = v
		}
		for _, group := range groups[1:] {
			for endpoint, v := range group[sym] {
				if _, exists := merged[endpoint]; exists {
					continue
				}
				merged[endpoint] = v
			}
		}
		out[sym] = merged
	}
	return out, nil
}
