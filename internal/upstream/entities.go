package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kaan/campora/internal/app/models"
)

// Institutions

func (c *Client) ListInstitutions(ctx context.Context, token string, params ListParams) ([]models.Institution, error) {
	var out []models.Institution
	err := c.do(ctx, token, http.MethodGet, "/institutions", params.Values(), nil, &out)
	return out, err
}

func (c *Client) CreateInstitution(ctx context.Context, token string, in models.Institution) (*models.Institution, error) {
	var out models.Institution
	if err := c.do(ctx, token, http.MethodPost, "/institutions", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateInstitution(ctx context.Context, token string, id int64, in models.Institution) (*models.Institution, error) {
	var out models.Institution
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/institutions/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteInstitution(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/institutions/%d", id), nil, nil, nil)
}

// Faculties (scoped by institution)

func (c *Client) ListAllFaculties(ctx context.Context, token string, params ListParams) ([]models.Faculty, error) {
	var out []models.Faculty
	err := c.do(ctx, token, http.MethodGet, "/faculties", params.Values(), nil, &out)
	return out, err
}

func (c *Client) ListInstitutionFaculties(ctx context.Context, token string, institutionID int64, params ListParams) ([]models.Faculty, error) {
	var out []models.Faculty
	err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/institutions/%d/faculties", institutionID), params.Values(), nil, &out)
	return out, err
}

func (c *Client) CreateFaculty(ctx context.Context, token string, in models.Faculty) (*models.Faculty, error) {
	var out models.Faculty
	if err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/institutions/%d/faculties", in.InstitutionID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateFaculty(ctx context.Context, token string, id int64, in models.Faculty) (*models.Faculty, error) {
	var out models.Faculty
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/faculties/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteFaculty(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/faculties/%d", id), nil, nil, nil)
}

// Departments (scoped by faculty)

func (c *Client) ListAllDepartments(ctx context.Context, token string, params ListParams) ([]models.Department, error) {
	var out []models.Department
	err := c.do(ctx, token, http.MethodGet, "/departments", params.Values(), nil, &out)
	return out, err
}

func (c *Client) ListFacultyDepartments(ctx context.Context, token string, facultyID int64, params ListParams) ([]models.Department, error) {
	var out []models.Department
	err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/faculties/%d/departments", facultyID), params.Values(), nil, &out)
	return out, err
}

func (c *Client) CreateDepartment(ctx context.Context, token string, in models.Department) (*models.Department, error) {
	var out models.Department
	if err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/faculties/%d/departments", in.FacultyID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDepartment(ctx context.Context, token string, id int64, in models.Department) (*models.Department, error) {
	var out models.Department
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/departments/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/departments/%d", id), nil, nil, nil)
}

// Programs (scoped by department)

func (c *Client) ListAllPrograms(ctx context.Context, token string, params ListParams) ([]models.Program, error) {
	var out []models.Program
	err := c.do(ctx, token, http.MethodGet, "/programs", params.Values(), nil, &out)
	return out, err
}

func (c *Client) ListDepartmentPrograms(ctx context.Context, token string, departmentID int64, params ListParams) ([]models.Program, error) {
	var out []models.Program
	err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/departments/%d/programs", departmentID), params.Values(), nil, &out)
	return out, err
}

func (c *Client) CreateProgram(ctx context.Context, token string, in models.Program) (*models.Program, error) {
	var out models.Program
	if err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/departments/%d/programs", in.DepartmentID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProgram(ctx context.Context, token string, id int64, in models.Program) (*models.Program, error) {
	var out models.Program
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/programs/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProgram(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/programs/%d", id), nil, nil, nil)
}

// Courses (catalog, unscoped)

func (c *Client) ListCourses(ctx context.Context, token string, params ListParams) ([]models.Course, error) {
	var out []models.Course
	err := c.do(ctx, token, http.MethodGet, "/courses", params.Values(), nil, &out)
	return out, err
}

func (c *Client) CreateCourse(ctx context.Context, token string, in models.Course) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, token, http.MethodPost, "/courses", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCourse(ctx context.Context, token string, id int64, in models.Course) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/courses/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCourse(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/courses/%d", id), nil, nil, nil)
}

// Program-course links (scoped by program)

func (c *Client) ListProgramCourses(ctx context.Context, token string, programID int64, params ListParams) ([]models.ProgramCourse, error) {
	var out []models.ProgramCourse
	err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/programs/%d/program-courses", programID), params.Values(), nil, &out)
	return out, err
}

func (c *Client) CreateProgramCourse(ctx context.Context, token string, in models.ProgramCourse) (*models.ProgramCourse, error) {
	var out models.ProgramCourse
	if err := c.do(ctx, token, http.MethodPost, "/program-courses", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProgramCourse(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/program-courses/%d", id), nil, nil, nil)
}

// Students (scoped by department)

func (c *Client) ListAllStudents(ctx context.Context, token string, params ListParams) ([]models.Student, error) {
	var out []models.Student
	err := c.do(ctx, token, http.MethodGet, "/students", params.Values(), nil, &out)
	return out, err
}

func (c *Client) ListDepartmentStudents(ctx context.Context, token string, departmentID int64, params ListParams) ([]models.Student, error) {
	var out []models.Student
	err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/departments/%d/students", departmentID), params.Values(), nil, &out)
	return out, err
}

func (c *Client) CreateStudent(ctx context.Context, token string, in models.Student) (*models.Student, error) {
	var out models.Student
	if err := c.do(ctx, token, http.MethodPost, "/students", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStudent(ctx context.Context, token string, id int64, in models.Student) (*models.Student, error) {
	var out models.Student
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/students/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteStudent(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/students/%d", id), nil, nil, nil)
}

// Users and roles

func (c *Client) ListUsers(ctx context.Context, token string, params ListParams) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, token, http.MethodGet, "/users", params.Values(), nil, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, token string, in models.User) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, token, http.MethodPost, "/users", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, id int64, in models.User) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}

func (c *Client) ListUserRoles(ctx context.Context, token string, userID int64) ([]models.UserRole, error) {
	var out []models.UserRole
	err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/users/%d/roles", userID), nil, nil, &out)
	return out, err
}

func (c *Client) AssignRole(ctx context.Context, token string, in models.UserRole) (*models.UserRole, error) {
	var out models.UserRole
	if err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/users/%d/roles", in.UserID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RevokeRole(ctx context.Context, token string, userID, roleID int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/users/%d/roles/%d", userID, roleID), nil, nil, nil)
}
