package employee

import (
	"fmt"
	"net/http"
	"time"

	employeeerrors "go-empmgmt/internal/employee/errors"
	"go-empmgmt/internal/shared/apperror"
	"go-empmgmt/internal/shared/contextutil"
	"go-empmgmt/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("http employee validation failed", zap.String("path", c.FullPath()), zap.Error(err))
	h.writeServiceError(c, apperror.MapValidationError(err))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	e, err := h.service.CreateInternalEmployee(c.Request.Context(), req.FirstName, req.LastName)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, toEmployeeResponse(e), nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", id))

	e, err := h.service.FetchInternalEmployee(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toEmployeeResponse(e), nil)
}

func (h *Handler) GiveRaise(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req RaiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.writeServiceError(c, fmt.Errorf("%w: %q", employeeerrors.ErrInvalidRaiseAmount, req.Amount))
		return
	}

	e, err := h.service.FetchInternalEmployee(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.service.GiveRaise(ctx, e, amount); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toEmployeeResponse(e), nil)
}

func (h *Handler) NotifyOfAbsence(c *gin.Context) {
	ctx := c.Request.Context()

	e, err := h.service.FetchInternalEmployee(ctx, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.service.NotifyOfAbsence(ctx, e); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, AbsenceResponse{
		EmployeeID: e.ID.String(),
		NotifiedAt: time.Now().UTC(),
	}, nil)
}

// Promote asks the eligibility service within the request's lifetime. A
// request deadline surfaces as the client's transport error.
func (h *Handler) Promote(c *gin.Context) {
	ctx := c.Request.Context()

	e, err := h.service.FetchInternalEmployee(ctx, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	promoted, err := h.service.Promote(ctx, e)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, PromotionResponse{
		Promoted: promoted,
		Employee: toEmployeeResponse(e),
	}, nil)
}

func (h *Handler) AttendCourse(c *gin.Context) {
	ctx := c.Request.Context()

	var req AttendCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	e, err := h.service.FetchInternalEmployee(ctx, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.service.AttendCourse(ctx, e, req.CourseID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toEmployeeResponse(e), nil)
}
