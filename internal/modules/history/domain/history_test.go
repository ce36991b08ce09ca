package domain_test

import (
	"testing"

	"aiact/internal/modules/history/domain"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		{ID: "rep-9", Description: "McDonald's uses an AI recruiting assistant (Olivia) to screen candidates and schedule interviews."},
		{ID: "rep-5", Description: "A customer service chatbot for an online retailer."},
		{ID: "rep-2", Description: "Municipal social scoring pilot ranking residents by behavior."},
	}
}

func TestFilterMatchesDescriptionCaseInsensitively(t *testing.T) {
	t.Parallel()
	got := domain.Filter(sampleRecords(), "MCDONALD")
	if len(got) != 1 || got[0].ID != "rep-9" {
		t.Fatalf("expected exactly the McDonald's record, got %+v", got)
	}
}

func TestFilterMatchesID(t *testing.T) {
	t.Parallel()
	got := domain.Filter(sampleRecords(), "REP-5")
	if len(got) != 1 || got[0].ID != "rep-5" {
		t.Fatalf("expected id match, got %+v", got)
	}
}

func TestEmptyTermMatchesAllInServerOrder(t *testing.T) {
	t.Parallel()
	records := sampleRecords()
	got := domain.Filter(records, "   ")
	if len(got) != len(records) {
		t.Fatalf("empty term must match all, got %d", len(got))
	}
	for i := range got {
		if got[i].ID != records[i].ID {
			t.Fatalf("server order must be preserved")
		}
	}
}

func TestFilterWithNoMatchesReturnsEmpty(t *testing.T) {
	t.Parallel()
	if got := domain.Filter(sampleRecords(), "quantum"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}
