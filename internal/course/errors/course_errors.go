package courseerrors

import (
	"go-empmgmt/internal/shared/apperror"
	"net/http"
)

var (
	ErrCourseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Course not found",
		http.StatusNotFound,
	)
	ErrInvalidCourseID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid course ID",
		http.StatusBadRequest,
	)
)
