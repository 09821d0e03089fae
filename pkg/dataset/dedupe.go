package dataset

// Dedupe collapses records sharing a natural key to the first occurrence,
// preserving first-seen order.
func Dedupe(records []ErrorRecord) []ErrorRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]ErrorRecord, 0, len(records))
	for _, r := range records {
		key := r.Code()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
