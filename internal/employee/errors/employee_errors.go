package employeeerrors

import (
	"go-empmgmt/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidRaiseAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Raise amount must be a decimal number",
		http.StatusBadRequest,
	)
	// ErrInvalidRaise is returned when a raise is below the policy minimum.
	ErrInvalidRaise = apperror.New(
		apperror.CodeInvalidState,
		"Raise must be higher than or equal to the minimum raise",
		http.StatusUnprocessableEntity,
	)
	// ErrAbsenceDelivery is returned when a subscriber could not accept an
	// absence notification.
	ErrAbsenceDelivery = apperror.New(
		apperror.CodeServiceUnavailable,
		"Absence notification could not be delivered",
		http.StatusServiceUnavailable,
	)
)
