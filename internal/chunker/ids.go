package chunker

import "github.com/Samarth-Subramani/RAG-Application/internal/domain"

// AssignIDs gives every chunk its "{source}:{page}:{index}" id, where index
// counts the chunks of the same page seen earlier in the slice. The order of
// chunks is preserved. Because the counter is kept per page, chunks from
// different pages may be interleaved without producing duplicate ids; for
// pages emitted contiguously the ids match a single running counter that
// resets whenever the page changes.
func AssignIDs(chunks []domain.Chunk) []domain.Chunk {
	out := make([]domain.Chunk, len(chunks))
	seen := make(map[string]int)
	for i, ch := range chunks {
		key := ch.PageKey()
		idx := seen[key]
		seen[key] = idx + 1
		ch.Index = idx
		ch.ID = domain.ChunkID(ch.Source, ch.Page, idx)
		out[i] = ch
	}
	return out
}

// Collisions returns the ids that occur more than once, in first-seen order.
func Collisions(chunks []domain.Chunk) []string {
	count := make(map[string]int, len(chunks))
	var dups []string
	for _, ch := range chunks {
		count[ch.ID]++
		if count[ch.ID] == 2 {
			dups = append(dups, ch.ID)
		}
	}
	return dups
}
