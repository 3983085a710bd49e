package tracker

import (
	"sort"
)

// QueryLog applies the from/to/limit view to a user's exercise log and
// formats the result for output. The stored log is never mutated; filtering
// and sorting happen on a copy. Malformed parameters are ignored rather than
// rejected, so this pipeline cannot fail.
func QueryLog(log []Exercise, q LogQuery) []LogEntry {
	entries := make([]Exercise, len(log))
	copy(entries, log)

	if from, ok := ParseInstant(q.From); ok {
		entries = filterExercises(entries, func(e Exercise) bool {
			return !e.Date.Before(from)
		})
	}
	if to, ok := ParseInstant(q.To); ok {
		entries = filterExercises(entries, func(e Exercise) bool {
			return !e.Date.After(to)
		})
	}

	// Stable so that entries sharing a date keep their insertion order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	if limit, ok := ParseLimit(q.Limit); ok && limit < len(entries) {
		entries = entries[:limit]
	}

	out := make([]LogEntry, len(entries))
	for i, e := range entries {
		out[i] = LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date.Format(DateLayout),
		}
	}
	return out
}

func filterExercises(entries []Exercise, keep func(Exercise) bool) []Exercise {
	filtered := entries[:0]
	for _, e := range entries {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
