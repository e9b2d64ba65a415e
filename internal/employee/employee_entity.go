package employee

import (
	"time"

	"go-empmgmt/internal/course"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InternalEmployee is an employee of the organization. FullName and
// SuggestedBonus are derived on every call and have no column.
type InternalEmployee struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FirstName         string          `gorm:"not null"`
	LastName          string          `gorm:"not null"`
	Salary            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	JobLevel          int             `gorm:"not null"`
	YearsInService    int             `gorm:"not null"`
	MinimumRaiseGiven bool            `gorm:"not null"`
	AttendedCourses   []course.Course `gorm:"-"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (InternalEmployee) TableName() string {
	return "internal_employees"
}

func NewInternalEmployee(
	firstName, lastName string,
	yearsInService int,
	salary decimal.Decimal,
	minimumRaiseGiven bool,
	jobLevel int,
) *InternalEmployee {
	return &InternalEmployee{
		ID:                uuid.New(),
		FirstName:         firstName,
		LastName:          lastName,
		Salary:            salary,
		JobLevel:          jobLevel,
		YearsInService:    yearsInService,
		MinimumRaiseGiven: minimumRaiseGiven,
		AttendedCourses:   []course.Course{},
	}
}

func (e *InternalEmployee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e *InternalEmployee) SuggestedBonus() decimal.Decimal {
	return ComputeSuggestedBonus(len(e.AttendedCourses), e.YearsInService)
}

func (e *InternalEmployee) HasAttended(courseID uuid.UUID) bool {
	for _, c := range e.AttendedCourses {
		if c.ID == courseID {
			return true
		}
	}
	return false
}

// AttendCourse records c and reports whether it was added. Attending a
// course twice is a no-op. Attended courses are never flagged new.
func (e *InternalEmployee) AttendCourse(c course.Course) bool {
	if e.HasAttended(c.ID) {
		return false
	}
	c.IsNew = false
	e.AttendedCourses = append(e.AttendedCourses, c)
	return true
}

// clone returns a copy that can be mutated and persisted without touching e.
func (e *InternalEmployee) clone() *InternalEmployee {
	cp := *e
	cp.AttendedCourses = make([]course.Course, len(e.AttendedCourses))
	copy(cp.AttendedCourses, e.AttendedCourses)
	return &cp
}
