package conversation

// maxChunkLen bounds a single outbound message, in runes.
const maxChunkLen = 3500

const recordSeparator = "\n\n"

// SplitRecords packs records into messages of at most limit runes, keeping
// each record in one message whenever it fits. Records longer than the limit
// are hard-split. Output order follows input order.
func SplitRecords(records []string, limit int) []string {
	if limit <= 0 {
		limit = maxChunkLen
	}

	var (
		chunks  []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, string(current))
			current = nil
		}
	}

	sep := []rune(recordSeparator)
	for _, rec := range records {
		r := []rune(rec)
		if len(r) == 0 {
			continue
		}
		for len(r) > limit {
			flush()
			chunks = append(chunks, string(r[:limit]))
			r = r[limit:]
		}
		if len(r) == 0 {
			continue
		}
		switch {
		case len(current) == 0:
			current = append(current, r...)
		case len(current)+len(sep)+len(r) <= limit:
			current = append(current, sep...)
			current = append(current, r...)
		default:
			flush()
			current = append(current, r...)
		}
	}
	flush()
	return chunks
}
