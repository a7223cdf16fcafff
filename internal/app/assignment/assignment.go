package assignment

import (
	"context"
	"strings"

	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/app/stores"
	"github.com/kaan/campora/internal/pkg/apperrors"
	"github.com/kaan/campora/internal/upstream"
)

// Manager drives the program-course dual-pane screen: an "available"
// pane of catalog courses not yet linked to the selected program and an
// "assigned" pane of linked ones. Membership is always recomputed from
// the authoritative link list, never tracked incrementally, so a course
// can never sit in both panes at once.
type Manager struct {
	courses *stores.Scoped[models.Course]
	links   *stores.Scoped[models.ProgramCourse]
}

// NewManager wires the manager onto the course catalog store and the
// program-course link store.
func NewManager(courses *stores.Scoped[models.Course], links *stores.Scoped[models.ProgramCourse]) *Manager {
	return &Manager{courses: courses, links: links}
}

// SelectProgram switches the manager to a program and reloads both the
// catalog and the program's link list.
func (m *Manager) SelectProgram(ctx context.Context, programID int64) error {
	if programID <= 0 {
		return apperrors.ErrProgramNotSelected
	}
	m.links.SetParent(programID)
	if _, err := m.courses.Fetch(ctx, upstream.ListParams{}); err != nil {
		return err
	}
	if _, err := m.links.Fetch(ctx, upstream.ListParams{}); err != nil {
		return err
	}
	return nil
}

// Panes holds the two independently filtered course lists.
type Panes struct {
	Available []models.Course `json:"available"`
	Assigned  []models.Course `json:"assigned"`
}

// Panes recomputes both panes from current state, applying a separate
// case-insensitive substring filter to each.
func (m *Manager) Panes(availableQuery, assignedQuery string) (Panes, error) {
	if m.links.Parent() == 0 {
		return Panes{}, apperrors.ErrProgramNotSelected
	}

	linked := make(map[int64]bool)
	for _, link := range m.links.Data() {
		linked[link.CourseID] = true
	}

	var panes Panes
	for _, course := range m.courses.Data() {
		if linked[course.ID] {
			if courseMatches(course, assignedQuery) {
				panes.Assigned = append(panes.Assigned, course)
			}
		} else if courseMatches(course, availableQuery) {
			panes.Available = append(panes.Available, course)
		}
	}
	return panes, nil
}

// Add links a course to the selected program.
func (m *Manager) Add(ctx context.Context, courseID int64) (*models.ProgramCourse, error) {
	programID := m.links.Parent()
	if programID == 0 {
		return nil, apperrors.ErrProgramNotSelected
	}
	for _, link := range m.links.Data() {
		if link.CourseID == courseID {
			return nil, apperrors.ErrCourseAlreadyLinked
		}
	}
	return m.links.Create(ctx, models.ProgramCourse{ProgramID: programID, CourseID: courseID})
}

// Remove unlinks a course by resolving the existing join row for the
// (program, course) pair and deleting it by id.
func (m *Manager) Remove(ctx context.Context, courseID int64) error {
	programID := m.links.Parent()
	if programID == 0 {
		return apperrors.ErrProgramNotSelected
	}
	var joinID int64
	for _, link := range m.links.Data() {
		if link.ProgramID == programID && link.CourseID == courseID {
			joinID = link.ID
			break
		}
	}
	if joinID == 0 {
		return apperrors.ErrCourseNotLinked
	}
	_, err := m.links.Delete(ctx, joinID)
	return err
}

func courseMatches(course models.Course, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(course.Name), q) ||
		strings.Contains(strings.ToLower(course.CourseCode), q)
}
