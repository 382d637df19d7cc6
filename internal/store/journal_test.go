package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fundview/internal/models"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := OpenJournal(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("OpenJournal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournalSaveAndList(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	result := &models.TradingResult{
		Decisions: map[string]models.Decision{
			"AAPL": {Action: "buy", Quantity: 10, Confidence: 87.5, Reasoning: "moat"},
			"MSFT": {Action: "hold", Quantity: 0, Confidence: 60, Reasoning: map[string]any{"note": "wait"}},
		},
	}

	at := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	if err := j.SaveDecisions(ctx, result, "both", at); err != nil {
		t.Fatalf("SaveDecisions: %v", err)
	}

	entries, err := j.ListDecisions(ctx, JournalFilter{})
	if err != nil {
		t.Fatalf("ListDecisions: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	for _, e := range entries {
		if e.Language != "both" {
			t.Errorf("language = %q, want both", e.Language)
		}
	}

	aapl, err := j.ListDecisions(ctx, JournalFilter{Ticker: "AAPL"})
	if err != nil {
		t.Fatalf("ListDecisions filtered: %v", err)
	}
	if len(aapl) != 1 || aapl[0].Action != "buy" || aapl[0].Quantity != 10 {
		t.Errorf("filtered entries = %+v", aapl)
	}
	if aapl[0].Reasoning != "moat" {
		t.Errorf("reasoning = %q, want moat", aapl[0].Reasoning)
	}
}

func TestJournalListOrderAndLimit(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	for i, date := range []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	} {
		result := &models.TradingResult{
			Decisions: map[string]models.Decision{
				"NVDA": {Action: "buy", Quantity: int64(i + 1), Confidence: 50},
			},
		}
		if err := j.SaveDecisions(ctx, result, "zh", date); err != nil {
			t.Fatalf("SaveDecisions: %v", err)
		}
	}

	entries, err := j.ListDecisions(ctx, JournalFilter{Limit: 2})
	if err != nil {
		t.Fatalf("ListDecisions: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !entries[0].RecordedAt.After(entries[1].RecordedAt) {
		t.Errorf("entries not newest-first: %v then %v", entries[0].RecordedAt, entries[1].RecordedAt)
	}

	since, err := j.ListDecisions(ctx, JournalFilter{Since: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("ListDecisions since: %v", err)
	}
	if len(since) != 2 {
		t.Errorf("since filter got %d entries, want 2", len(since))
	}
}

func TestJournalSaveEmpty(t *testing.T) {
	j := openTestJournal(t)

	if err := j.SaveDecisions(context.Background(), nil, "zh", time.Now()); err != nil {
		t.Errorf("SaveDecisions(nil) = %v, want nil", err)
	}
	if err := j.SaveDecisions(context.Background(), &models.TradingResult{}, "zh", time.Now()); err != nil {
		t.Errorf("SaveDecisions(empty) = %v, want nil", err)
	}
}
