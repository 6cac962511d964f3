package repository

import (
	"strings"
	"testing"
)

func TestParseHighPerformerSortAcceptsClosedSet(t *testing.T) {
	cases := map[string]HighPerformerSort{
		"":                                    SortHostID,
		"host_name":                           SortHostName,
		"total_listings_count":                SortListings,
		"average_value_score_across_listings": SortValueScore,
		"min_listing_rating":                  SortWorstRating,
	}
	for raw, want := range cases {
		got, ok := ParseHighPerformerSort(raw)
		if !ok {
			t.Errorf("ParseHighPerformerSort(%q) rejected", raw)
			continue
		}
		if got != want {
			t.Errorf("ParseHighPerformerSort(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestParseHighPerformerSortRejectsUnknownTokens(t *testing.T) {
	for _, raw := range []string{
		"host_id; DROP TABLE host",
		"HOST_NAME",
		"price",
		" host_name",
	} {
		if _, ok := ParseHighPerformerSort(raw); ok {
			t.Errorf("ParseHighPerformerSort(%q) accepted, want rejection", raw)
		}
	}
}

func TestHighPerformerSortOrderClauseIsStatic(t *testing.T) {
	for _, s := range []HighPerformerSort{
		SortHostID, SortHostName, SortListings, SortValueScore, SortWorstRating,
	} {
		clause := s.orderClause()
		if !strings.HasPrefix(clause, "ORDER BY ") {
			t.Errorf("orderClause(%q) = %q, want ORDER BY prefix", s, clause)
		}
		// The clause must come from the fixed mapping, never from the raw
		// token itself.
		if strings.ContainsAny(clause, ";$%") {
			t.Errorf("orderClause(%q) = %q contains unexpected characters", s, clause)
		}
	}
	if got := HighPerformerSort("garbage").orderClause(); got != "ORDER BY h.host_id" {
		t.Errorf("unknown sort orderClause = %q, want default host_id ordering", got)
	}
}
