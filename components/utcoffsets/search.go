package utcoffsets

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formfields/pkg/utcoffset"
)

// Option is one entry of the JSON response.
type Option struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

// Label returns the display label of offset, e.g. "UTC+05:45".
func Label(offset utcoffset.Offset) string {
	return "UTC" + offset.String()
}

// Search filters offsets by query. Offsets where some form of the offset
// starts with the query come first; ties keep catalog order.
func Search(offsets []utcoffset.Offset, query string, limit int, opts Options) []utcoffset.Offset {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(offsets) <= limit {
				return append([]utcoffset.Offset{}, offsets...)
			}
			return append([]utcoffset.Offset{}, offsets[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedOffset, 0, 8)
	for _, offset := range offsets {
		matched, isPrefix := matchOffset(offset, q)
		if !matched {
			continue
		}
		matches = append(matches, matchedOffset{offset: offset, isPrefix: isPrefix})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]utcoffset.Offset, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.offset)
	}
	return out
}

// SearchOptions runs Search and maps the results to response options.
func SearchOptions(offsets []utcoffset.Offset, query string, limit int, opts Options) []Option {
	results := Search(offsets, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, offset := range results {
		out = append(out, Option{
			Value:   offset.String(),
			Label:   Label(offset),
			Minutes: offset.Minutes(),
		})
	}
	return out
}

func matchOffset(offset utcoffset.Offset, q string) (matched, isPrefix bool) {
	value := offset.String()
	forms := []string{
		value,
		strings.ToLower(Label(offset)),
		strings.ReplaceAll(value, ":", ""),
	}
	for _, form := range forms {
		if strings.HasPrefix(form, q) {
			return true, true
		}
		if strings.Contains(form, q) {
			matched = true
		}
	}
	return matched, false
}

type matchedOffset struct {
	offset   utcoffset.Offset
	isPrefix bool
}
