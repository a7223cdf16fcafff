package workspace

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/pkg/apperrors"
	"github.com/kaan/campora/internal/upstream"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	client, err := upstream.NewClient("http://upstream.invalid/api", time.Second, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return NewRegistry(client, zerolog.Nop())
}

func TestCreateGetRemove(t *testing.T) {
	r := newTestRegistry(t)
	user := models.User{ID: 7, Email: "admin@example.edu"}
	roles := []models.UserRole{{UserID: 7, Role: models.RoleAdmin}}

	ws := r.Create("tok-1", user, roles)
	if ws.User.ID != 7 {
		t.Fatalf("user: %+v", ws.User)
	}
	if !ws.Capabilities.CanManageEntities() {
		t.Fatal("admin capabilities not resolved at creation")
	}

	got, err := r.Get("tok-1")
	if err != nil || got != ws {
		t.Fatalf("get: %v %v", got, err)
	}

	r.Remove("tok-1")
	if _, err := r.Get("tok-1"); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after remove, got %v", err)
	}
}

func TestCreateReplacesExistingWorkspace(t *testing.T) {
	r := newTestRegistry(t)
	first := r.Create("tok-1", models.User{ID: 7}, nil)
	second := r.Create("tok-1", models.User{ID: 7}, []models.UserRole{{Role: models.RoleFaculty}})
	if first == second {
		t.Fatal("re-login must build a fresh workspace")
	}
	got, err := r.Get("tok-1")
	if err != nil || got != second {
		t.Fatalf("get after replace: %v %v", got, err)
	}
}

func TestAttendanceSessionPerClass(t *testing.T) {
	r := newTestRegistry(t)
	ws := r.Create("tok-1", models.User{ID: 7}, nil)

	a := ws.AttendanceSession(42)
	b := ws.AttendanceSession(42)
	if a != b {
		t.Fatal("same class must reuse its session")
	}
	if c := ws.AttendanceSession(43); c == a {
		t.Fatal("different classes must not share a session")
	}

	ws.DropAttendanceSession(42)
	if d := ws.AttendanceSession(42); d == a {
		t.Fatal("dropped session must be rebuilt on next use")
	}
}
