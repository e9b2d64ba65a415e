package employee

import (
	"go-empmgmt/internal/course"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var DefaultStartingSalary = decimal.NewFromInt(2500)

//go:generate mockgen -source=employee_factory.go -destination=mock/employee_factory_mock.go -package=mock
type Factory interface {
	CreateEmployee(firstName, lastName string) *InternalEmployee
}

type factory struct {
	startingSalary decimal.Decimal
}

// NewFactory builds internal employees at job level 1 with no years in
// service and no attended courses.
func NewFactory() Factory {
	return &factory{startingSalary: DefaultStartingSalary}
}

func (f *factory) CreateEmployee(firstName, lastName string) *InternalEmployee {
	return &InternalEmployee{
		ID:              uuid.New(),
		FirstName:       firstName,
		LastName:        lastName,
		Salary:          f.startingSalary,
		JobLevel:        1,
		AttendedCourses: []course.Course{},
	}
}
