package catalog

// Product is a single catalogue record. The scorer only interprets
// concern_tags; every other field passes through to the client untouched,
// so the record is kept as a raw map rather than a fixed struct.
type Product map[string]any

// ConcernTags returns the product's concern_tags as a string slice.
// Missing or malformed tags yield nil.
func (p Product) ConcernTags() []string {
	raw, ok := p["concern_tags"]
	if !ok {
		return nil
	}
	switch tags := raw.(type) {
	case []string:
		return tags
	case []any:
		out := make([]string, 0, len(tags))
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Name returns the product name if present, for logs and tests.
func (p Product) Name() string {
	if s, ok := p["name"].(string); ok {
		return s
	}
	return ""
}
