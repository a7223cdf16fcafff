package stores

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/pkg/apperrors"
	"github.com/kaan/campora/internal/upstream"
)

// The constructors below bind one Scoped store to its upstream endpoint
// group for a given login token. Parent wiring per entity:
//
//	institutions              unscoped
//	faculties                 scoped by institution (all-list fallback)
//	departments               scoped by faculty (all-list fallback)
//	programs                  scoped by department (all-list fallback)
//	courses                   unscoped catalog
//	program-courses           scoped by program, no all-list
//	students                  optional department scope
//	users                     unscoped

func NewInstitutionStore(client *upstream.Client, token string, logger zerolog.Logger) *Scoped[models.Institution] {
	return NewUnscoped(
		func(ctx context.Context, _ int64, params upstream.ListParams) ([]models.Institution, error) {
			return client.ListInstitutions(ctx, token, params)
		},
		func(ctx context.Context, _ int64, item models.Institution) (*models.Institution, error) {
			return client.CreateInstitution(ctx, token, item)
		},
		func(ctx context.Context, id int64, item models.Institution) (*models.Institution, error) {
			return client.UpdateInstitution(ctx, token, id, item)
		},
		func(ctx context.Context, id int64) error {
			return client.DeleteInstitution(ctx, token, id)
		},
		logger,
	)
}

func NewFacultyStore(client *upstream.Client, token string, logger zerolog.Logger) *Scoped[models.Faculty] {
	return NewScoped(
		func(ctx context.Context, parentID int64, params upstream.ListParams) ([]models.Faculty, error) {
			if parentID == 0 {
				return client.ListAllFaculties(ctx, token, params)
			}
			return client.ListInstitutionFaculties(ctx, token, parentID, params)
		},
		func(ctx context.Context, parentID int64, item models.Faculty) (*models.Faculty, error) {
			item.InstitutionID = parentID
			return client.CreateFaculty(ctx, token, item)
		},
		func(ctx context.Context, id int64, item models.Faculty) (*models.Faculty, error) {
			return client.UpdateFaculty(ctx, token, id, item)
		},
		func(ctx context.Context, id int64) error {
			return client.DeleteFaculty(ctx, token, id)
		},
		logger,
	)
}

func NewDepartmentStore(client *upstream.Client, token string, logger zerolog.Logger) *Scoped[models.Department] {
	return NewScoped(
		func(ctx context.Context, parentID int64, params upstream.ListParams) ([]models.Department, error) {
			if parentID == 0 {
				return client.ListAllDepartments(ctx, token, params)
			}
			return client.ListFacultyDepartments(ctx, token, parentID, params)
		},
		func(ctx context.Context, parentID int64, item models.Department) (*models.Department, error) {
			item.FacultyID = parentID
			return client.CreateDepartment(ctx, token, item)
		},
		func(ctx context.Context, id int64, item models.Department) (*models.Department, error) {
			return client.UpdateDepartment(ctx, token, id, item)
		},
		func(ctx context.Context, id int64) error {
			return client.DeleteDepartment(ctx, token, id)
		},
		logger,
	)
}

func NewProgramStore(client *upstream.Client, token string, logger zerolog.Logger) *Scoped[models.Program] {
	return NewScoped(
		func(ctx context.Context, parentID int64, params upstream.ListParams) ([]models.Program, error) {
			if parentID == 0 {
				return client.ListAllPrograms(ctx, token, params)
			}
			return client.ListDepartmentPrograms(ctx, token, parentID, params)
		},
		func(ctx context.Context, parentID int64, item models.Program) (*models.Program, error) {
			item.DepartmentID = parentID
			return client.CreateProgram(ctx, token, item)
		},
		func(ctx context.Context, id int64, item models.Program) (*models.Program, error) {
			return client.UpdateProgram(ctx, token, id, item)
		},
		func(ctx context.Context, id int64) error {
			return client.DeleteProgram(ctx, token, id)
		},
		logger,
	)
}

func NewCourseStore(client *upstream.Client, token string, logger zerolog.Logger) *Scoped[models.Course] {
	return NewUnscoped(
		func(ctx context.Context, _ int64, params upstream.ListParams) ([]models.Course, error) {
			return client.ListCourses(ctx, token, params)
		},
		func(ctx context.Context, _ int64, item models.Course) (*models.Course, error) {
			return client.CreateCourse(ctx, token, item)
		},
		func(ctx context.Context, id int64, item models.Course) (*models.Course, error) {
			return client.UpdateCourse(ctx, token, id, item)
		},
		func(ctx context.Context, id int64) error {
			return client.DeleteCourse(ctx, token, id)
		},
		logger,
	)
}

func NewProgramCourseStore(client *upstream.Client, token string, logger zerolog.Logger) *Scoped[models.ProgramCourse] {
	return NewScoped(
		func(ctx context.Context, parentID int64, params upstream.ListParams) ([]models.ProgramCourse, error) {
			// Links only exist under a program; without one there is
			// nothing to list and no call is made.
			if parentID == 0 {
				return nil, nil
			}
			return client.ListProgramCourses(ctx, token, parentID, params)
		},
		func(ctx context.Context, parentID int64, item models.ProgramCourse) (*models.ProgramCourse, error) {
			item.ProgramID = parentID
			return client.CreateProgramCourse(ctx, token, item)
		},
		func(ctx context.Context, _ int64, _ models.ProgramCourse) (*models.ProgramCourse, error) {
			// Link rows are add/remove only.
			return nil, apperrors.ErrUpstreamRejected
		},
		func(ctx context.Context, id int64) error {
			return client.DeleteProgramCourse(ctx, token, id)
		},
		logger,
	)
}

func NewStudentStore(client *upstream.Client, token string, logger zerolog.Logger) *Scoped[models.Student] {
	return NewUnscoped(
		func(ctx context.Context, parentID int64, params upstream.ListParams) ([]models.Student, error) {
			if parentID == 0 {
				return client.ListAllStudents(ctx, token, params)
			}
			return client.ListDepartmentStudents(ctx, token, parentID, params)
		},
		func(ctx context.Context, parentID int64, item models.Student) (*models.Student, error) {
			if parentID != 0 {
				item.DepartmentID = parentID
			}
			return client.CreateStudent(ctx, token, item)
		},
		func(ctx context.Context, id int64, item models.Student) (*models.Student, error) {
			return client.UpdateStudent(ctx, token, id, item)
		},
		func(ctx context.Context, id int64) error {
			return client.DeleteStudent(ctx, token, id)
		},
		logger,
	)
}

func NewUserStore(client *upstream.Client, token string, logger zerolog.Logger) *Scoped[models.User] {
	return NewUnscoped(
		func(ctx context.Context, _ int64, params upstream.ListParams) ([]models.User, error) {
			return client.ListUsers(ctx, token, params)
		},
		func(ctx context.Context, _ int64, item models.User) (*models.User, error) {
			return client.CreateUser(ctx, token, item)
		},
		func(ctx context.Context, id int64, item models.User) (*models.User, error) {
			return client.UpdateUser(ctx, token, id, item)
		},
		func(ctx context.Context, id int64) error {
			return client.DeleteUser(ctx, token, id)
		},
		logger,
	)
}
