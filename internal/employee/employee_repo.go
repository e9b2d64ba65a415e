package employee

import (
	"context"
	"fmt"

	"go-empmgmt/internal/course"
	courseerrors "go-empmgmt/internal/course/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *InternalEmployee) error
	FindByID(ctx context.Context, id uuid.UUID) (*InternalEmployee, error)
	Save(ctx context.Context, e *InternalEmployee) error
}

// attendance is one row of employee_courses. Position is the index of the
// course in AttendedCourses.
type attendance struct {
	InternalEmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position           int       `gorm:"not null"`
}

func (attendance) TableName() string {
	return "employee_courses"
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create stores e and links its attended courses. Catalog rows are only
// referenced, never written, so a course flagged new on e cannot leak into
// the catalog.
func (r *repository) Create(ctx context.Context, e *InternalEmployee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		return linkCourses(tx, e)
	})
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*InternalEmployee, error) {
	db := r.db.WithContext(ctx)

	var e InternalEmployee
	if err := db.First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var links []attendance
	err := db.Where("internal_employee_id = ?", id).
		Order("position ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	courses, err := attendedCourses(db, links)
	if err != nil {
		return nil, err
	}
	e.AttendedCourses = courses

	return &e, nil
}

// Save updates e and appends any newly attended courses. Existing links keep
// their position.
func (r *repository) Save(ctx context.Context, e *InternalEmployee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(e).Error; err != nil {
			return err
		}
		return linkCourses(tx, e)
	})
}

func linkCourses(tx *gorm.DB, e *InternalEmployee) error {
	if len(e.AttendedCourses) == 0 {
		return nil
	}
	rows := make([]attendance, len(e.AttendedCourses))
	for i, c := range e.AttendedCourses {
		rows[i] = attendance{InternalEmployeeID: e.ID, CourseID: c.ID, Position: i}
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// attendedCourses loads the courses behind links and returns them in link
// order. The catalog query itself is unordered.
func attendedCourses(db *gorm.DB, links []attendance) ([]course.Course, error) {
	if len(links) == 0 {
		return []course.Course{}, nil
	}

	ids := make([]uuid.UUID, len(links))
	for i, l := range links {
		ids[i] = l.CourseID
	}

	var rows []course.Course
	if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]course.Course, len(rows))
	for _, c := range rows {
		byID[c.ID] = c
	}

	out := make([]course.Course, 0, len(links))
	for _, l := range links {
		c, ok := byID[l.CourseID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", courseerrors.ErrCourseNotFound, l.CourseID)
		}
		out = append(out, c)
	}
	return out, nil
}
