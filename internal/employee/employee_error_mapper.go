package employee

import (
	"errors"

	courseerrors "go-empmgmt/internal/course/errors"
	employeeerrors "go-empmgmt/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return employeeerrors.ErrEmployeeAlreadyExists
		case pgForeignKeyViolation:
			if pgErr.ConstraintName == "fk_employee_courses_course" {
				return courseerrors.ErrCourseNotFound
			}
		}
	}

	return err
}
