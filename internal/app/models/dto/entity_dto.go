package dto

// CreateInstitutionRequest represents institution creation data
type CreateInstitutionRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description"`
}

// UpdateInstitutionRequest represents institution update data
type UpdateInstitutionRequest = CreateInstitutionRequest

// CreateFacultyRequest represents faculty creation data; the institution
// scope comes from the route.
type CreateFacultyRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description"`
}

// UpdateFacultyRequest represents faculty update data
type UpdateFacultyRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=150"`
	Description   string `json:"description"`
	InstitutionID int64  `json:"institution_id" binding:"required,gt=0"`
}

// CreateDepartmentRequest represents department creation data; the
// faculty scope comes from the route.
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description"`
	FacultyID   int64  `json:"faculty_id" binding:"required,gt=0"`
}

// CreateProgramRequest represents program creation data; the department
// scope comes from the route.
type CreateProgramRequest struct {
	Title        string `json:"title" binding:"required,min=2,max=150"`
	Description  string `json:"description"`
	ProgramLevel string `json:"program_level" binding:"required,program_level"`
}

// UpdateProgramRequest represents program update data
type UpdateProgramRequest struct {
	Title        string `json:"title" binding:"required,min=2,max=150"`
	Description  string `json:"description"`
	ProgramLevel string `json:"program_level" binding:"required,program_level"`
	DepartmentID int64  `json:"department_id" binding:"required,gt=0"`
}

// CreateCourseRequest represents catalog course creation data
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	CourseCode  string `json:"course_code" binding:"required,min=2,max=32"`
	Description string `json:"description"`
	CreditHours int    `json:"credit_hours" binding:"gte=0,lte=30"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest = CreateCourseRequest

// AssignCourseRequest links a course to the selected program.
type AssignCourseRequest struct {
	CourseID int64 `json:"course_id" binding:"required,gt=0"`
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	StudentID      string `json:"student_id" binding:"required,student_code"`
	FirstName      string `json:"first_name" binding:"required,min=1,max=100"`
	LastName       string `json:"last_name" binding:"required,min=1,max=100"`
	Email          string `json:"email" binding:"required,email"`
	DepartmentID   int64  `json:"department_id" binding:"required,gt=0"`
	Status         string `json:"status" binding:"required,student_status"`
	EnrollmentDate string `json:"enrollment_date" binding:"omitempty,dateonly"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest = CreateStudentRequest

// CreateUserRequest represents account creation data
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	IsActive  bool   `json:"is_active"`
}

// UpdateUserRequest represents account update data
type UpdateUserRequest = CreateUserRequest

// AssignRoleRequest attaches a role to a user.
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,platform_role"`
}

// LoginRequest carries dashboard login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse describes the authenticated session for the client.
type SessionResponse struct {
	Token        string      `json:"token"`
	User         interface{} `json:"user"`
	Capabilities interface{} `json:"capabilities"`
}
