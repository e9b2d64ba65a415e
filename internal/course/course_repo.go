package course

import (
	"context"
	"errors"
	"fmt"

	courseerrors "go-empmgmt/internal/course/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=course_repo.go -destination=mock/course_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Course, error)
	// FindByIDs returns the courses in the order of ids and fails with
	// ErrCourseNotFound when any of them is missing.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Course, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Course, error) {
	var c Course
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", courseerrors.ErrCourseNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Course, error) {
	if len(ids) == 0 {
		return []Course{}, nil
	}

	var rows []Course
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return orderByIDs(rows, ids)
}

func orderByIDs(rows []Course, ids []uuid.UUID) ([]Course, error) {
	byID := make(map[uuid.UUID]Course, len(rows))
	for _, c := range rows {
		byID[c.ID] = c
	}

	out := make([]Course, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", courseerrors.ErrCourseNotFound, id)
		}
		out = append(out, c)
	}
	return out, nil
}
