package bungo

type mentionKey struct {
	workID    string
	placeName string
}

// Deduplicate keeps the first mention of each (work, place name) pair and
// drops later ones. Order is preserved.
func Deduplicate(mentions []*PlaceMention) []*PlaceMention {
	seen := make(map[mentionKey]struct{}, len(mentions))
	unique := make([]*PlaceMention, 0, len(mentions))
	for _, m := range mentions {
		if m == nil {
			continue
		}
		key := mentionKey{workID: m.WorkID, placeName: m.PlaceName}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, m)
	}
	return unique
}
