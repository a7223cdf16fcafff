package validation

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/kaan/campora/internal/app/models"
)

// Validation rule patterns
var (
	// Human-readable student code, e.g. "2021-CS-0042"
	StudentCodePattern = `^[A-Za-z0-9][A-Za-z0-9\-]{2,31}$`

	NameMinLength = 2
	NameMaxLength = 150
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	StudentCode *regexp.Regexp
}{
	StudentCode: regexp.MustCompile(StudentCodePattern),
}

// RegisterCustomValidators installs the domain validators on gin's binding
// engine so request DTOs can use them in binding tags.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("program_level", func(fl validator.FieldLevel) bool {
		return models.ValidProgramLevel(models.ProgramLevel(fl.Field().String()))
	})
	_ = v.RegisterValidation("student_status", func(fl validator.FieldLevel) bool {
		return models.ValidStudentStatus(models.StudentStatus(fl.Field().String()))
	})
	_ = v.RegisterValidation("student_code", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.StudentCode.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true // pair with required where mandatory
		}
		_, err := time.Parse("15:04", s)
		return err == nil
	})
	_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	})
	_ = v.RegisterValidation("platform_role", func(fl validator.FieldLevel) bool {
		return models.ValidRole(models.Role(fl.Field().String()))
	})
}
