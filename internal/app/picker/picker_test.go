package picker

import (
	"context"
	"errors"
	"testing"
)

func threeLevelChain(programCalls *int) *Chain {
	institutions := NewLevel("institution", func(ctx context.Context, parentID int64) ([]Option, error) {
		return []Option{
			{ID: 1, Label: "Central University"},
			{ID: 2, Label: "Coastal College"},
		}, nil
	})
	departments := NewLevel("department", func(ctx context.Context, parentID int64) ([]Option, error) {
		if parentID == 1 {
			return []Option{
				{ID: 11, Label: "Computer Science"},
				{ID: 12, Label: "Mathematics"},
			}, nil
		}
		return []Option{{ID: 21, Label: "Marine Biology"}}, nil
	})
	programs := NewLevel("program", func(ctx context.Context, parentID int64) ([]Option, error) {
		if programCalls != nil {
			*programCalls++
		}
		return []Option{{ID: 111, Label: "BSc Software Engineering"}}, nil
	})
	return NewChain(institutions, departments, programs)
}

func TestLoadFillsRootOnly(t *testing.T) {
	c := threeLevelChain(nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	options, loaded := c.Options("institution")
	if !loaded || len(options) != 2 {
		t.Fatalf("root: loaded=%v options=%v", loaded, options)
	}
	if _, loaded := c.Options("department"); loaded {
		t.Fatal("department must stay disabled until an institution is selected")
	}
}

func TestQueryFiltersCaseInsensitive(t *testing.T) {
	c := threeLevelChain(nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	options, loaded, err := c.SetQuery("institution", "central")
	if err != nil || !loaded {
		t.Fatalf("query: loaded=%v err=%v", loaded, err)
	}
	if len(options) != 1 || options[0].ID != 1 {
		t.Fatalf("expected the Central match, got %v", options)
	}
}

func TestQueryNoMatchesIsLoadedEmpty(t *testing.T) {
	c := threeLevelChain(nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	options, loaded, err := c.SetQuery("institution", "zzz")
	if err != nil {
		t.Fatal(err)
	}
	if !loaded || len(options) != 0 {
		t.Fatalf("no-results must report loaded with zero options, got loaded=%v options=%v", loaded, options)
	}
}

func TestSelectLoadsNextLevelScoped(t *testing.T) {
	c := threeLevelChain(nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := c.Select(context.Background(), "institution", 2); err != nil {
		t.Fatal(err)
	}

	options, loaded := c.Options("department")
	if !loaded || len(options) != 1 || options[0].ID != 21 {
		t.Fatalf("expected the Coastal departments, got loaded=%v options=%v", loaded, options)
	}
	if sel, ok := c.Selection("institution"); !ok || sel.ID != 2 {
		t.Fatalf("selection: %v %v", sel, ok)
	}
}

func TestReselectingParentClearsEverythingBelow(t *testing.T) {
	var programCalls int
	c := threeLevelChain(&programCalls)
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := c.Select(context.Background(), "institution", 1); err != nil {
		t.Fatal(err)
	}
	if err := c.Select(context.Background(), "department", 11); err != nil {
		t.Fatal(err)
	}
	if _, loaded := c.Options("program"); !loaded {
		t.Fatal("program level should be loaded after department selection")
	}

	// Changing the institution must wipe department and program state.
	if err := c.Select(context.Background(), "institution", 2); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Selection("department"); ok {
		t.Fatal("department selection survived an upstream change")
	}
	if _, loaded := c.Options("program"); loaded {
		t.Fatal("program level survived an upstream change")
	}
}

func TestEditingQueryAbandonsSelection(t *testing.T) {
	c := threeLevelChain(nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := c.Select(context.Background(), "institution", 1); err != nil {
		t.Fatal(err)
	}

	if _, _, err := c.SetQuery("institution", "Coa"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Selection("institution"); ok {
		t.Fatal("editing the query must drop the selection")
	}
	if _, loaded := c.Options("department"); loaded {
		t.Fatal("downstream level must clear when the query changes")
	}
}

func TestUnknownLevelRejected(t *testing.T) {
	c := threeLevelChain(nil)
	if _, _, err := c.SetQuery("campus", "x"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if err := c.Clear("campus"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLoaderErrorPropagates(t *testing.T) {
	wantErr := errors.New("upstream down")
	c := NewChain(NewLevel("institution", func(ctx context.Context, parentID int64) ([]Option, error) {
		return nil, wantErr
	}))
	if err := c.Load(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
}
