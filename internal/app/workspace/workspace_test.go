package workspace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/upstream"
)

// hierarchyUpstream serves just enough of the entity endpoints to walk
// the institution → department → program picker chain.
func hierarchyUpstream() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/institutions", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Institution{
			{ID: 1, Name: "Central University"},
			{ID: 2, Name: "Coastal College"},
		})
	})
	mux.HandleFunc("/departments", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Department{
			{ID: 11, FacultyID: 5, InstitutionID: 1, Name: "Computer Science"},
			{ID: 12, FacultyID: 5, InstitutionID: 1, Name: "Mathematics"},
			{ID: 21, FacultyID: 9, InstitutionID: 2, Name: "Marine Biology"},
		})
	})
	mux.HandleFunc("/departments/11/programs", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Program{
			{ID: 111, DepartmentID: 11, Title: "BSc Software Engineering"},
			{ID: 112, DepartmentID: 11, Title: "BSc Data Science"},
		})
	})
	return mux
}

func TestHierarchyChainWalk(t *testing.T) {
	srv := httptest.NewServer(hierarchyUpstream())
	defer srv.Close()
	client, err := upstream.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	ws := New(client, "tok", models.User{ID: 7}, nil, zerolog.Nop())
	ctx := context.Background()

	if err := ws.Hierarchy.Load(ctx); err != nil {
		t.Fatal(err)
	}
	options, loaded := ws.Hierarchy.Options(LevelInstitution)
	if !loaded || len(options) != 2 {
		t.Fatalf("institutions: loaded=%v options=%v", loaded, options)
	}

	// Selecting an institution narrows departments via the denormalized
	// institution id; the upstream has no direct scoped endpoint.
	if err := ws.Hierarchy.Select(ctx, LevelInstitution, 1); err != nil {
		t.Fatal(err)
	}
	options, loaded = ws.Hierarchy.Options(LevelDepartment)
	if !loaded || len(options) != 2 {
		t.Fatalf("departments: loaded=%v options=%v", loaded, options)
	}
	for _, opt := range options {
		if opt.ID == 21 {
			t.Fatal("department from another institution leaked into the options")
		}
	}

	if err := ws.Hierarchy.Select(ctx, LevelDepartment, 11); err != nil {
		t.Fatal(err)
	}
	options, loaded = ws.Hierarchy.Options(LevelProgram)
	if !loaded || len(options) != 2 {
		t.Fatalf("programs: loaded=%v options=%v", loaded, options)
	}

	// Query narrowing at the leaf level.
	matches, loaded, err := ws.Hierarchy.SetQuery(LevelProgram, "data")
	if err != nil || !loaded {
		t.Fatalf("query: loaded=%v err=%v", loaded, err)
	}
	if len(matches) != 1 || matches[0].ID != 112 {
		t.Fatalf("program query: %v", matches)
	}
}
