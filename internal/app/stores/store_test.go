package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/pkg/apperrors"
	"github.com/kaan/campora/internal/upstream"
)

func newTestStore(calls *int) *Scoped[models.Faculty] {
	list := func(ctx context.Context, parentID int64, params upstream.ListParams) ([]models.Faculty, error) {
		*calls++
		if parentID == 0 {
			return []models.Faculty{
				{ID: 1, InstitutionID: 10, Name: "Engineering"},
				{ID: 2, InstitutionID: 20, Name: "Arts"},
			}, nil
		}
		return []models.Faculty{{ID: 1, InstitutionID: parentID, Name: "Engineering"}}, nil
	}
	create := func(ctx context.Context, parentID int64, item models.Faculty) (*models.Faculty, error) {
		*calls++
		item.ID = 99
		item.InstitutionID = parentID
		return &item, nil
	}
	update := func(ctx context.Context, id int64, item models.Faculty) (*models.Faculty, error) {
		*calls++
		item.ID = id
		return &item, nil
	}
	remove := func(ctx context.Context, id int64) error {
		*calls++
		return nil
	}
	return NewScoped(list, create, update, remove, zerolog.Nop())
}

func TestFetchFallsBackToAllWithoutParent(t *testing.T) {
	var calls int
	s := newTestStore(&calls)

	items, err := s.Fetch(context.Background(), upstream.ListParams{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected unscoped list of 2, got %d", len(items))
	}

	s.SetParent(10)
	items, err = s.Fetch(context.Background(), upstream.ListParams{})
	if err != nil {
		t.Fatalf("scoped fetch: %v", err)
	}
	if len(items) != 1 || items[0].InstitutionID != 10 {
		t.Fatalf("expected scoped list, got %+v", items)
	}
}

func TestMutationsGuardedWithoutParent(t *testing.T) {
	var calls int
	s := newTestStore(&calls)

	if _, err := s.Create(context.Background(), models.Faculty{Name: "X"}); !errors.Is(err, apperrors.ErrParentScopeMissing) {
		t.Fatalf("create: expected ErrParentScopeMissing, got %v", err)
	}
	if _, err := s.Update(context.Background(), 1, models.Faculty{Name: "X"}); !errors.Is(err, apperrors.ErrParentScopeMissing) {
		t.Fatalf("update: expected ErrParentScopeMissing, got %v", err)
	}
	if _, err := s.Delete(context.Background(), 1); !errors.Is(err, apperrors.ErrParentScopeMissing) {
		t.Fatalf("delete: expected ErrParentScopeMissing, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("guarded mutations must not touch the network, saw %d calls", calls)
	}
}

func TestCreateAppendsExactlyOnce(t *testing.T) {
	var calls int
	s := newTestStore(&calls)
	s.SetParent(10)
	if _, err := s.Fetch(context.Background(), upstream.ListParams{}); err != nil {
		t.Fatal(err)
	}

	created, err := s.Create(context.Background(), models.Faculty{Name: "Law"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 99 || created.InstitutionID != 10 {
		t.Fatalf("unexpected created row: %+v", created)
	}

	data := s.Data()
	if len(data) != 2 {
		t.Fatalf("expected 2 rows after create, got %d", len(data))
	}
	seen := 0
	for _, f := range data {
		if f.ID == 99 {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("created row appended %d times", seen)
	}
}

func TestUpdateReplacesInPlace(t *testing.T) {
	var calls int
	s := newTestStore(&calls)
	s.SetParent(10)
	if _, err := s.Fetch(context.Background(), upstream.ListParams{}); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Update(context.Background(), 1, models.Faculty{InstitutionID: 10, Name: "Engineering II"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	data := s.Data()
	if len(data) != 1 || data[0].Name != "Engineering II" {
		t.Fatalf("expected in-place replacement, got %+v", data)
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	var calls int
	s := newTestStore(&calls)
	s.SetParent(10)
	if _, err := s.Fetch(context.Background(), upstream.ListParams{}); err != nil {
		t.Fatal(err)
	}

	ok, err := s.Delete(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	if len(s.Data()) != 0 {
		t.Fatalf("expected empty list after delete, got %+v", s.Data())
	}
}

func TestStaleFetchDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	list := func(ctx context.Context, parentID int64, params upstream.ListParams) ([]models.Faculty, error) {
		if parentID == 10 {
			close(started)
			<-release // hold the first scope's fetch until the scope moved on
			return []models.Faculty{{ID: 1, InstitutionID: 10, Name: "Stale"}}, nil
		}
		return []models.Faculty{{ID: 2, InstitutionID: 20, Name: "Fresh"}}, nil
	}
	s := NewScoped(list, nil, nil, nil, zerolog.Nop())

	s.SetParent(10)
	done := make(chan error, 1)
	go func() {
		_, err := s.Fetch(context.Background(), upstream.ListParams{})
		done <- err
	}()

	<-started
	s.SetParent(20)
	if _, err := s.Fetch(context.Background(), upstream.ListParams{}); err != nil {
		t.Fatalf("fresh fetch: %v", err)
	}
	close(release)

	if err := <-done; !errors.Is(err, apperrors.ErrStaleResponse) {
		t.Fatalf("expected ErrStaleResponse for the abandoned scope, got %v", err)
	}
	data := s.Data()
	if len(data) != 1 || data[0].Name != "Fresh" {
		t.Fatalf("stale response overwrote fresh state: %+v", data)
	}
}

func TestErrorRecordedAndCleared(t *testing.T) {
	fail := true
	list := func(ctx context.Context, parentID int64, params upstream.ListParams) ([]models.Faculty, error) {
		if fail {
			return nil, apperrors.ErrUpstreamUnavailable
		}
		return []models.Faculty{{ID: 1}}, nil
	}
	s := NewUnscoped(list, nil, nil, nil, zerolog.Nop())

	if _, err := s.Fetch(context.Background(), upstream.ListParams{}); err == nil {
		t.Fatal("expected fetch error")
	}
	if s.Err() == nil {
		t.Fatal("error not recorded in store state")
	}

	fail = false
	if _, err := s.Fetch(context.Background(), upstream.ListParams{}); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if s.Err() != nil {
		t.Fatalf("error not cleared after success: %v", s.Err())
	}
}
