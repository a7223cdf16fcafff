package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/pkg/apperrors"
	"github.com/kaan/campora/internal/upstream"
)

// fakeUpstream serves the class-attendance endpoint group for one class.
type fakeUpstream struct {
	mu      sync.Mutex
	records []models.AttendanceRecord
	has404  bool // attendance endpoint answers 404

	stores  []upstream.AttendanceSubmission
	updates []upstream.AttendanceSubmission
}

func (f *fakeUpstream) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/attendance/get_class/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ClassSession{
			ID: 42, CourseID: 5, CourseSectionID: 2,
			ClassDate: "2026-09-14", StartTime: "09:00", EndTime: "10:30",
			Room: "B204", Topic: "Graphs",
		})
	})
	mux.HandleFunc("/attendance/get_class_students/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.ClassStudent{
			{StudentID: 1, RegNo: "2021-CS-001", FirstName: "Ada", LastName: "Lovelace"},
			{StudentID: 2, RegNo: "2021-CS-002", FirstName: "Alan", LastName: "Turing"},
			{StudentID: 3, RegNo: "2021-CS-003", FirstName: "Grace", LastName: "Hopper"},
		})
	})
	mux.HandleFunc("/attendance/get_attendance/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.has404 {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"no attendance found"}`)
			return
		}
		json.NewEncoder(w).Encode(f.records)
	})
	mux.HandleFunc("/attendance/store_attendance", func(w http.ResponseWriter, r *http.Request) {
		var sub upstream.AttendanceSubmission
		json.NewDecoder(r.Body).Decode(&sub)
		f.mu.Lock()
		f.stores = append(f.stores, sub)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/attendance/update_attendance", func(w http.ResponseWriter, r *http.Request) {
		var sub upstream.AttendanceSubmission
		json.NewDecoder(r.Body).Decode(&sub)
		f.mu.Lock()
		f.updates = append(f.updates, sub)
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func newTestSession(t *testing.T, fake *fakeUpstream) *Session {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	client, err := upstream.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return NewSession(client, "test-token", 42, zerolog.Nop())
}

func TestLoadWith404MeansNoRecords(t *testing.T) {
	s := newTestSession(t, &fakeUpstream{has404: true})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.State() != RecordNone {
		t.Fatalf("state = %v, want RecordNone", s.State())
	}
	if s.HasAttendance() {
		t.Fatal("404 from the attendance endpoint must mean no records, not an error")
	}
	if got := s.Counts(); got.Total != 3 || got.Unset != 3 {
		t.Fatalf("counts: %+v", got)
	}
}

func TestLoadWithRecordsSeedsMarks(t *testing.T) {
	s := newTestSession(t, &fakeUpstream{records: []models.AttendanceRecord{
		{StudentID: 1, RegNo: "2021-CS-001", RevAttendance: 1},
		{StudentID: 2, RegNo: "2021-CS-002", RevAttendance: 0},
	}})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.State() != RecordExists {
		t.Fatalf("state = %v, want RecordExists", s.State())
	}
	counts := s.Counts()
	if counts.Present != 1 || counts.Absent != 1 || counts.Unset != 1 {
		t.Fatalf("counts: %+v", counts)
	}
}

func TestLoadMissingClass(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	client, err := upstream.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	s := NewSession(client, "test-token", 7, zerolog.Nop())

	if err := s.Load(context.Background()); !errors.Is(err, apperrors.ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
	if s.State() != RecordUnknown {
		t.Fatalf("failed load must leave state unknown, got %v", s.State())
	}
}

func TestMarkBeforeLoadRejected(t *testing.T) {
	s := newTestSession(t, &fakeUpstream{has404: true})
	if err := s.Mark(1, models.AttendancePresent); !errors.Is(err, apperrors.ErrAttendanceNotLoaded) {
		t.Fatalf("expected ErrAttendanceNotLoaded, got %v", err)
	}
}

func TestMarkValidation(t *testing.T) {
	s := newTestSession(t, &fakeUpstream{has404: true})
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.Mark(1, models.AttendanceUnset); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("unset must not be markable, got %v", err)
	}
	if err := s.Mark(999, models.AttendancePresent); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("off-roster student accepted: %v", err)
	}
	if err := s.Mark(1, models.AttendancePresent); err != nil {
		t.Fatalf("valid mark rejected: %v", err)
	}
}

func TestMarkAllIsIdempotent(t *testing.T) {
	s := newTestSession(t, &fakeUpstream{has404: true})
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkAll(models.AttendancePresent); err != nil {
		t.Fatal(err)
	}
	first := s.Counts()
	if err := s.MarkAll(models.AttendancePresent); err != nil {
		t.Fatal(err)
	}
	if second := s.Counts(); second != first {
		t.Fatalf("repeated MarkAll changed counts: %+v vs %+v", first, second)
	}
	if first.Present != 3 || first.Unset != 0 {
		t.Fatalf("counts after MarkAll: %+v", first)
	}
}

func TestSubmitWithNothingMarkedRejectedBeforeNetwork(t *testing.T) {
	fake := &fakeUpstream{has404: true}
	s := newTestSession(t, fake)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.Submit(context.Background()); !errors.Is(err, apperrors.ErrNoStudentsMarked) {
		t.Fatalf("expected ErrNoStudentsMarked, got %v", err)
	}
	if len(fake.stores)+len(fake.updates) != 0 {
		t.Fatal("zero-marked submit must not reach the upstream")
	}
	if s.State() != RecordNone {
		t.Fatalf("state changed on rejected submit: %v", s.State())
	}
}

func TestSavePayloadCarriesMarkedStudentsOnly(t *testing.T) {
	fake := &fakeUpstream{has404: true}
	s := newTestSession(t, fake)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.Mark(1, models.AttendancePresent); err != nil {
		t.Fatal(err)
	}
	if err := s.Mark(3, models.AttendanceAbsent); err != nil {
		t.Fatal(err)
	}

	if err := s.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(fake.stores) != 1 || len(fake.updates) != 0 {
		t.Fatalf("expected one store call, got stores=%d updates=%d", len(fake.stores), len(fake.updates))
	}
	sub := fake.stores[0]
	if sub.ClassID != 42 || len(sub.Entries) != 2 {
		t.Fatalf("save payload: %+v", sub)
	}
	for _, e := range sub.Entries {
		if e.StudentID == 2 {
			t.Fatal("unmarked student leaked into save payload")
		}
	}
	if s.State() != RecordExists {
		t.Fatalf("successful save must transition to RecordExists, got %v", s.State())
	}
}

func TestUpdatePayloadCoversFullRoster(t *testing.T) {
	fake := &fakeUpstream{records: []models.AttendanceRecord{
		{StudentID: 1, RegNo: "2021-CS-001", RevAttendance: 1},
	}}
	s := newTestSession(t, fake)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.Mark(2, models.AttendancePresent); err != nil {
		t.Fatal(err)
	}

	if err := s.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(fake.updates) != 1 || len(fake.stores) != 0 {
		t.Fatalf("expected one update call, got stores=%d updates=%d", len(fake.stores), len(fake.updates))
	}
	sub := fake.updates[0]
	if len(sub.Entries) != 3 {
		t.Fatalf("update must cover the full roster, got %d entries", len(sub.Entries))
	}
	byID := map[int64]int{}
	for _, e := range sub.Entries {
		byID[e.StudentID] = e.IsPresent
	}
	if byID[1] != 1 || byID[2] != 1 {
		t.Fatalf("marked students wrong in update payload: %v", byID)
	}
	if byID[3] != 0 {
		t.Fatal("unmarked student must default to absent in update payload")
	}
}

func TestSaveThenResubmitUsesUpdatePath(t *testing.T) {
	fake := &fakeUpstream{has404: true}
	s := newTestSession(t, fake)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.Mark(1, models.AttendancePresent); err != nil {
		t.Fatal(err)
	}
	if err := s.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(fake.stores) != 1 || len(fake.updates) != 1 {
		t.Fatalf("expected save then update, got stores=%d updates=%d", len(fake.stores), len(fake.updates))
	}
}
