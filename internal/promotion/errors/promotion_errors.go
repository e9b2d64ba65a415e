package promotionerrors

import (
	"go-empmgmt/internal/shared/apperror"
	"net/http"
)

var (
	// ErrPromotionService covers transport failures, timeouts and non-2xx
	// answers from the eligibility service.
	ErrPromotionService = apperror.New(
		apperror.CodeServiceUnavailable,
		"Promotion eligibility service is unavailable",
		http.StatusBadGateway,
	)
	ErrPromotionSerialization = apperror.New(
		apperror.CodeBadGateway,
		"Promotion eligibility response could not be read",
		http.StatusBadGateway,
	)
)
