package repository

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/okian/accent/internal/domain/catalog"
	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/internal/domain/phonetic"
)

func mustEntry(t *testing.T, text, tr, feature string) model.WordEntry {
	t.Helper()
	e, err := model.NewWordEntry(text, phonetic.MustParse(tr), feature)
	if err != nil {
		t.Fatalf("building %q: %v", text, err)
	}
	return e
}

func TestWords_AddAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewWords()

	if n := repo.Count(ctx); n != 0 {
		t.Fatalf("expected empty repository, got %d", n)
	}

	water := mustEntry(t, "water", "W AA1 DX ER0", catalog.TFlap)
	if err := repo.Add(ctx, water); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindByText(ctx, "WATER ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "water" || got.TargetFeature != catalog.TFlap {
		t.Errorf("unexpected entry %+v", got)
	}

	dup := mustEntry(t, "Water", "W AO1 T ER0", catalog.Stress)
	if err := repo.Add(ctx, dup); !errors.Is(err, ErrDuplicateWord) {
		t.Errorf("expected ErrDuplicateWord, got %v", err)
	}
	if n := repo.Count(ctx); n != 1 {
		t.Errorf("expected count 1, got %d", n)
	}

	if _, err := repo.FindByText(ctx, "fire"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestWords_Random(t *testing.T) {
	ctx := context.Background()
	repo := NewWords(WithRand(rand.New(rand.NewPCG(1, 2))))

	if _, err := repo.Random(ctx); !errors.Is(err, ErrEmptyRepository) {
		t.Fatalf("expected ErrEmptyRepository, got %v", err)
	}

	if err := repo.Add(ctx, mustEntry(t, "feel", "F IY1 L", catalog.DarkL)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		got, err := repo.Random(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Text != "feel" {
			t.Fatalf("expected the single entry, got %q", got.Text)
		}
	}

	if err := repo.Add(ctx, mustEntry(t, "city", "S IH1 DX IY0", catalog.TFlap)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		got, _ := repo.Random(ctx)
		seen[got.Text] = true
	}
	if !seen["feel"] || !seen["city"] {
		t.Errorf("expected both entries to be drawn, saw %v", seen)
	}
}

func TestWords_AllOrderAndCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewWords()

	words := []model.WordEntry{
		mustEntry(t, "banana", "B AH0 N AE1 N AH0", catalog.Reduction),
		mustEntry(t, "feel", "F IY1 L", catalog.DarkL),
		mustEntry(t, "city", "S IH1 DX IY0", catalog.TFlap),
	}
	for _, w := range words {
		if err := repo.Add(ctx, w); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all := repo.All(ctx)
	for i, w := range words {
		if all[i].Text != w.Text {
			t.Errorf("position %d: expected %q, got %q", i, w.Text, all[i].Text)
		}
	}

	all[0].Syllables[0] = "mutated"
	again, _ := repo.FindByText(ctx, "banana")
	if again.Syllables[0] == "mutated" {
		t.Error("All leaked internal state")
	}

	flaps := repo.ByFeature(ctx, catalog.TFlap)
	if len(flaps) != 1 || flaps[0].Text != "city" {
		t.Errorf("unexpected ByFeature result %+v", flaps)
	}
}

func TestWords_Suggest(t *testing.T) {
	ctx := context.Background()
	repo := NewWords()
	for _, e := range []model.WordEntry{
		mustEntry(t, "water", "W AA1 DX ER0", catalog.TFlap),
		mustEntry(t, "feel", "F IY1 L", catalog.DarkL),
		mustEntry(t, "banana", "B AH0 N AE1 N AH0", catalog.Reduction),
	} {
		if err := repo.Add(ctx, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got := repo.Suggest(ctx, "watter", 3)
	if len(got) != 1 || got[0] != "water" {
		t.Errorf("expected [water], got %v", got)
	}

	for _, s := range repo.Suggest(ctx, "water", 3) {
		if s == "water" {
			t.Error("exact match should not be suggested")
		}
	}

	if got := repo.Suggest(ctx, "", 3); got != nil {
		t.Errorf("expected nil for empty query, got %v", got)
	}
}

func TestWords_ConcurrentAdd(t *testing.T) {
	ctx := context.Background()
	repo := NewWords()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, err := model.NewWordEntry(fmt.Sprintf("word%d", i), phonetic.MustParse("W ER1 D"), catalog.RColoring)
			if err != nil {
				t.Errorf("building entry: %v", err)
				return
			}
			if err := repo.Add(ctx, e); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			_, _ = repo.Random(ctx)
		}(i)
	}
	wg.Wait()

	if n := repo.Count(ctx); n != 100 {
		t.Errorf("expected 100 entries, got %d", n)
	}
}

func TestWords_AddRejectsIncompleteEntries(t *testing.T) {
	ctx := context.Background()
	repo := NewWords()
	valid := mustEntry(t, "feel", "F IY1 L", catalog.DarkL)

	noText := valid
	noText.Text = "  "
	if err := repo.Add(ctx, noText); !errors.Is(err, model.ErrInvalidWord) {
		t.Errorf("expected ErrInvalidWord for blank text, got %v", err)
	}
	if err := repo.Add(ctx, model.WordEntry{Text: "feel", TargetFeature: catalog.DarkL}); !errors.Is(err, model.ErrInvalidWord) {
		t.Errorf("expected ErrInvalidWord for missing transcription, got %v", err)
	}
	if n := repo.Count(ctx); n != 0 {
		t.Fatalf("expected no entries, got %d", n)
	}
	if err := repo.Add(ctx, valid); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}
}
