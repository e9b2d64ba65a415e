package course

import (
	"context"
	"fmt"

	courseerrors "go-empmgmt/internal/course/errors"

	"github.com/google/uuid"
)

// Courses every new internal employee is enrolled in unless configured otherwise.
var DefaultObligatoryCourseIDs = []uuid.UUID{
	uuid.MustParse("37e03ca7-c730-4351-834c-b66f280cdb01"),
	uuid.MustParse("1fd115cf-f44c-4982-86bc-a8fe2e4ff83e"),
}

//go:generate mockgen -source=course_obligatory.go -destination=mock/course_obligatory_mock.go -package=mock
type ObligatoryPolicy interface {
	GetObligatoryCourses(ctx context.Context) ([]Course, error)
}

type obligatoryPolicy struct {
	repo Repository
	ids  []uuid.UUID
}

func NewObligatoryPolicy(repo Repository, ids []uuid.UUID) ObligatoryPolicy {
	if len(ids) == 0 {
		ids = DefaultObligatoryCourseIDs
	}
	own := make([]uuid.UUID, len(ids))
	copy(own, ids)
	return &obligatoryPolicy{repo: repo, ids: own}
}

// ParseCourseIDs converts configured ids, rejecting the first malformed one.
func ParseCourseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", courseerrors.ErrInvalidCourseID, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GetObligatoryCourses returns the configured courses in catalog order.
// Attached courses are never flagged new, whatever the catalog says.
func (p *obligatoryPolicy) GetObligatoryCourses(ctx context.Context) ([]Course, error) {
	courses, err := p.repo.FindByIDs(ctx, p.ids)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		courses[i].IsNew = false
	}
	return courses, nil
}
