package repository

// membershipChunkSize caps how many identifiers go into a single $in
// predicate. Resolved ID sets larger than this are split into batches and the
// per-batch results unioned, so the reservation query never trips a store's
// membership-predicate limit.
const membershipChunkSize = 30

// chunkIDs splits ids into membershipChunkSize batches. An empty input yields
// a single nil chunk, meaning "no membership constraint" to the caller.
func chunkIDs(ids []string) [][]string {
	if len(ids) == 0 {
		return [][]string{nil}
	}

	chunks := make([][]string, 0, (len(ids)+membershipChunkSize-1)/membershipChunkSize)
	for start := 0; start < len(ids); start += membershipChunkSize {
		end := start + membershipChunkSize
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
