package workspace

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/app/assignment"
	"github.com/kaan/campora/internal/app/attendance"
	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/app/picker"
	"github.com/kaan/campora/internal/app/stores"
	"github.com/kaan/campora/internal/upstream"
)

// Picker level names for the hierarchy chain.
const (
	LevelInstitution = "institution"
	LevelDepartment  = "department"
	LevelProgram     = "program"
)

// Workspace bundles everything one login session works with: the entity
// stores holding read-through copies, the hierarchy picker chain, the
// program-course assignment manager, and the open attendance sessions.
// It is created on login, resolved per request, and dropped on logout —
// there is no ambient global session state.
type Workspace struct {
	Token        string
	User         models.User
	Capabilities models.Capabilities

	Institutions   *stores.Scoped[models.Institution]
	Faculties      *stores.Scoped[models.Faculty]
	Departments    *stores.Scoped[models.Department]
	Programs       *stores.Scoped[models.Program]
	Courses        *stores.Scoped[models.Course]
	ProgramCourses *stores.Scoped[models.ProgramCourse]
	Students       *stores.Scoped[models.Student]
	Users          *stores.Scoped[models.User]

	Hierarchy  *picker.Chain
	Assignment *assignment.Manager

	client *upstream.Client
	logger zerolog.Logger

	mu       sync.Mutex
	sessions map[int64]*attendance.Session
}

// New builds a workspace for an authenticated user. Capabilities are
// resolved here, once, from the closed role enum.
func New(client *upstream.Client, token string, user models.User, roles []models.UserRole, logger zerolog.Logger) *Workspace {
	ws := &Workspace{
		Token:        token,
		User:         user,
		Capabilities: models.ResolveCapabilities(roles),
		client:       client,
		logger:       logger,
		sessions:     make(map[int64]*attendance.Session),
	}

	ws.Institutions = stores.NewInstitutionStore(client, token, logger)
	ws.Faculties = stores.NewFacultyStore(client, token, logger)
	ws.Departments = stores.NewDepartmentStore(client, token, logger)
	ws.Programs = stores.NewProgramStore(client, token, logger)
	ws.Courses = stores.NewCourseStore(client, token, logger)
	ws.ProgramCourses = stores.NewProgramCourseStore(client, token, logger)
	ws.Students = stores.NewStudentStore(client, token, logger)
	ws.Users = stores.NewUserStore(client, token, logger)

	ws.Hierarchy = picker.NewChain(
		picker.NewLevel(LevelInstitution, ws.loadInstitutionOptions),
		picker.NewLevel(LevelDepartment, ws.loadDepartmentOptions),
		picker.NewLevel(LevelProgram, ws.loadProgramOptions),
	)
	ws.Assignment = assignment.NewManager(ws.Courses, ws.ProgramCourses)

	return ws
}

// AttendanceSession returns the workflow for a class, creating it on
// first use. One session per class id per workspace.
func (ws *Workspace) AttendanceSession(classID int64) *attendance.Session {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	session, ok := ws.sessions[classID]
	if !ok {
		session = attendance.NewSession(ws.client, ws.Token, classID, ws.logger)
		ws.sessions[classID] = session
	}
	return session
}

// DropAttendanceSession forgets a class's workflow, e.g. after its class
// is deleted.
func (ws *Workspace) DropAttendanceSession(classID int64) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	delete(ws.sessions, classID)
}

func (ws *Workspace) loadInstitutionOptions(ctx context.Context, _ int64) ([]picker.Option, error) {
	items, err := ws.client.ListInstitutions(ctx, ws.Token, upstream.ListParams{})
	if err != nil {
		return nil, err
	}
	options := make([]picker.Option, 0, len(items))
	for _, item := range items {
		options = append(options, picker.Option{ID: item.ID, Label: item.Name})
	}
	return options, nil
}

// loadDepartmentOptions lists all departments and narrows to the selected
// institution via the denormalized institution id; the upstream has no
// direct institution→department endpoint.
func (ws *Workspace) loadDepartmentOptions(ctx context.Context, institutionID int64) ([]picker.Option, error) {
	items, err := ws.client.ListAllDepartments(ctx, ws.Token, upstream.ListParams{})
	if err != nil {
		return nil, err
	}
	options := make([]picker.Option, 0, len(items))
	for _, item := range items {
		if institutionID != 0 && item.InstitutionID != institutionID {
			continue
		}
		options = append(options, picker.Option{ID: item.ID, Label: item.Name})
	}
	return options, nil
}

func (ws *Workspace) loadProgramOptions(ctx context.Context, departmentID int64) ([]picker.Option, error) {
	items, err := ws.client.ListDepartmentPrograms(ctx, ws.Token, departmentID, upstream.ListParams{})
	if err != nil {
		return nil, err
	}
	options := make([]picker.Option, 0, len(items))
	for _, item := range items {
		options = append(options, picker.Option{ID: item.ID, Label: item.Title})
	}
	return options, nil
}
