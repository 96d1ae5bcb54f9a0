package sanitizer

type Strategy func(string) string

// SanitizeSlice applies strategy to every item and drops empty results and
// duplicates, keeping first-seen order. The result is never nil.
func SanitizeSlice(values []string, strategy Strategy) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		s := strategy(v)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

func NormalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	return SanitizeSlice(tags, TrimAndNormalize)
}
