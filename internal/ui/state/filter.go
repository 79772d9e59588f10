package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterIndices returns the indices of labels matching query, in their
// original order. Fuzzy matches are preferred; a plain substring match is
// used when the fuzzy ranking finds nothing. An empty query matches all.
func FilterIndices(labels []string, query string) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		all := make([]int, len(labels))
		for i := range labels {
			all[i] = i
		}
		return all
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		out := make([]int, 0, len(matches))
		for i := range labels {
			if _, ok := matches[i]; ok {
				out = append(out, i)
			}
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	out := make([]int, 0)
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			out = append(out, i)
		}
	}
	return out
}

// BestMatchIndex returns the index of the closest label to query, or -1 when
// labels is empty. Exact and prefix matches beat fuzzy distance.
func BestMatchIndex(labels []string, query string) int {
	if len(labels) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.EqualFold(label, trimmed) {
			return i
		}
	}
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
