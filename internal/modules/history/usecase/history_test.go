package usecase_test

import (
	"context"
	"testing"

	"aiact/internal/modules/history/domain"
	"aiact/internal/modules/history/service"
	"aiact/internal/modules/history/usecase"
	apperrors "aiact/internal/platform/errors"
)

type fakeLister struct {
	calls   int
	records []domain.Record
	err     error
}

func (f *fakeLister) ListReports(context.Context) ([]domain.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func TestEveryFetchHitsTheGateway(t *testing.T) {
	t.Parallel()
	lister := &fakeLister{records: []domain.Record{{ID: "rep-1", Description: "A resume screening system."}}}
	uc := usecase.NewInteractor(service.NewHistoryService(lister))

	for range 3 {
		records, err := uc.Fetch(context.Background())
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(records) != 1 || records[0].ID != "rep-1" {
			t.Fatalf("unexpected records: %+v", records)
		}
	}
	if lister.calls != 3 {
		t.Fatalf("each visit must re-fetch, got %d calls", lister.calls)
	}
}

func TestFilterIsLocalAndCostsNoNetworkCall(t *testing.T) {
	t.Parallel()
	lister := &fakeLister{records: []domain.Record{
		{ID: "rep-1", Description: "McDonald's uses an AI recruiting assistant to screen candidates."},
		{ID: "rep-2", Description: "A translation service."},
	}}
	uc := usecase.NewInteractor(service.NewHistoryService(lister))

	fetched, err := uc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	got := uc.Filter(fetched, "mcdonald")
	if len(got) != 1 || got[0].ID != "rep-1" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
	if lister.calls != 1 {
		t.Fatalf("filtering must not hit the network, got %d calls", lister.calls)
	}
}

func TestFetchPropagatesNormalizedError(t *testing.T) {
	t.Parallel()
	lister := &fakeLister{err: &apperrors.RequestError{Message: "Failed to fetch reports"}}
	uc := usecase.NewInteractor(service.NewHistoryService(lister))
	if _, err := uc.Fetch(context.Background()); !apperrors.IsRequest(err) {
		t.Fatalf("expected RequestError, got %v", err)
	}
}
