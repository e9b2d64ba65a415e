package employee

import (
	"context"
	"fmt"
	"time"

	"go-empmgmt/internal/course"
	courseerrors "go-empmgmt/internal/course/errors"
	employeeerrors "go-empmgmt/internal/employee/errors"
	"go-empmgmt/internal/metrics"
	"go-empmgmt/internal/shared/async"
	"go-empmgmt/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service orchestrates the employee use cases. Every blocking call has an
// Async twin returning a Future; a Future that is never awaited runs to
// completion but its error is lost. The employee handed to an Async call
// must not be read or written until its Future resolves.
type Service interface {
	CreateInternalEmployee(ctx context.Context, firstName, lastName string) (*InternalEmployee, error)
	CreateInternalEmployeeAsync(ctx context.Context, firstName, lastName string) *async.Future[*InternalEmployee]

	FetchInternalEmployee(ctx context.Context, id string) (*InternalEmployee, error)
	FetchInternalEmployeeAsync(ctx context.Context, id string) *async.Future[*InternalEmployee]

	GiveRaise(ctx context.Context, e *InternalEmployee, amount decimal.Decimal) error
	GiveRaiseAsync(ctx context.Context, e *InternalEmployee, amount decimal.Decimal) *async.Future[struct{}]

	Promote(ctx context.Context, e *InternalEmployee) (bool, error)
	PromoteAsync(ctx context.Context, e *InternalEmployee) *async.Future[bool]

	AttendCourse(ctx context.Context, e *InternalEmployee, courseID string) error

	NotifyOfAbsence(ctx context.Context, e *InternalEmployee) error
	SubscribeAbsence(h AbsenceHandler) Subscription
	UnsubscribeAbsence(s Subscription)
}

type Dependencies struct {
	Repo       Repository
	Courses    course.Repository
	Obligatory course.ObligatoryPolicy
	Factory    Factory
	Raises     RaisePolicy
	Promoter   Promoter
	Metrics    *metrics.Metrics
}

type service struct {
	repo       Repository
	courses    course.Repository
	obligatory course.ObligatoryPolicy
	factory    Factory
	raises     RaisePolicy
	promoter   Promoter
	notifier   *AbsenceNotifier
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func NewService(deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}

	f := deps.Factory
	if f == nil {
		f = NewFactory()
	}

	return &service{
		repo:       deps.Repo,
		courses:    deps.Courses,
		obligatory: deps.Obligatory,
		factory:    f,
		raises:     deps.Raises,
		promoter:   deps.Promoter,
		notifier:   NewAbsenceNotifier(),
		metrics:    deps.Metrics,
		logger:     l,
	}
}

func (s *service) CreateInternalEmployee(ctx context.Context, firstName, lastName string) (*InternalEmployee, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create internal employee requested",
		zap.String("request_id", rid),
		zap.String("first_name", firstName),
		zap.String("last_name", lastName),
	)

	e := s.factory.CreateEmployee(firstName, lastName)

	courses, err := s.obligatory.GetObligatoryCourses(ctx)
	if err != nil {
		s.logger.Error("create internal employee load obligatory courses failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return nil, err
	}
	for _, c := range courses {
		e.AttendCourse(c)
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create internal employee persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", e.ID.String()),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}

	if s.metrics != nil {
		s.metrics.EmployeesCreated.Inc()
	}
	s.logger.Info("internal employee created",
		zap.String("request_id", rid),
		zap.String("employee_id", e.ID.String()),
		zap.Int("attended_courses", len(e.AttendedCourses)),
	)
	return e, nil
}

func (s *service) CreateInternalEmployeeAsync(ctx context.Context, firstName, lastName string) *async.Future[*InternalEmployee] {
	return async.Go(ctx, func(ctx context.Context) (*InternalEmployee, error) {
		return s.CreateInternalEmployee(ctx, firstName, lastName)
	})
}

func (s *service) FetchInternalEmployee(ctx context.Context, id string) (*InternalEmployee, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", employeeerrors.ErrInvalidEmployeeID, id)
	}

	e, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		s.logger.Debug("fetch internal employee failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}
	return e, nil
}

func (s *service) FetchInternalEmployeeAsync(ctx context.Context, id string) *async.Future[*InternalEmployee] {
	return async.Go(ctx, func(ctx context.Context) (*InternalEmployee, error) {
		return s.FetchInternalEmployee(ctx, id)
	})
}

// GiveRaise applies the raise policy and persists the result. e only changes
// once the new salary is stored.
func (s *service) GiveRaise(ctx context.Context, e *InternalEmployee, amount decimal.Decimal) error {
	rid := contextutil.GetRequestID(ctx)

	candidate := e.clone()
	if err := s.raises.ApplyRaise(candidate, amount); err != nil {
		s.recordRaise(metrics.RaiseRejected)
		s.logger.Warn("raise rejected",
			zap.String("request_id", rid),
			zap.String("employee_id", e.ID.String()),
			zap.String("amount", amount.String()),
		)
		return err
	}

	if err := s.repo.Save(ctx, candidate); err != nil {
		s.recordRaise(metrics.RaiseFailed)
		s.logger.Error("raise persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", e.ID.String()),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	*e = *candidate
	s.recordRaise(metrics.RaiseApplied)
	s.logger.Info("raise applied",
		zap.String("request_id", rid),
		zap.String("employee_id", e.ID.String()),
		zap.String("amount", amount.String()),
		zap.String("salary", e.Salary.String()),
		zap.Bool("minimum_raise_given", e.MinimumRaiseGiven),
	)
	return nil
}

func (s *service) GiveRaiseAsync(ctx context.Context, e *InternalEmployee, amount decimal.Decimal) *async.Future[struct{}] {
	return async.Go(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.GiveRaise(ctx, e, amount)
	})
}

func (s *service) Promote(ctx context.Context, e *InternalEmployee) (bool, error) {
	rid := contextutil.GetRequestID(ctx)

	start := time.Now()
	promoted, err := s.promoter.PromoteInternalEmployee(ctx, e)
	if s.metrics != nil {
		s.metrics.PromotionCheckDuration.Observe(time.Since(start).Seconds())
	}

	if err != nil {
		s.recordPromotion(metrics.PromotionFailed)
		s.logger.Error("promotion failed",
			zap.String("request_id", rid),
			zap.String("employee_id", e.ID.String()),
			zap.Error(err),
		)
		return false, err
	}

	if !promoted {
		s.recordPromotion(metrics.PromotionNotEligible)
		s.logger.Info("employee not eligible for promotion",
			zap.String("request_id", rid),
			zap.String("employee_id", e.ID.String()),
		)
		return false, nil
	}

	s.recordPromotion(metrics.PromotionPromoted)
	s.logger.Info("employee promoted",
		zap.String("request_id", rid),
		zap.String("employee_id", e.ID.String()),
		zap.Int("job_level", e.JobLevel),
	)
	return true, nil
}

func (s *service) PromoteAsync(ctx context.Context, e *InternalEmployee) *async.Future[bool] {
	return async.Go(ctx, func(ctx context.Context) (bool, error) {
		return s.Promote(ctx, e)
	})
}

// AttendCourse links a catalog course to e. Attending the same course twice
// is a no-op and does not touch the store.
func (s *service) AttendCourse(ctx context.Context, e *InternalEmployee, courseID string) error {
	id, err := uuid.Parse(courseID)
	if err != nil {
		return fmt.Errorf("%w: %s", courseerrors.ErrInvalidCourseID, courseID)
	}
	if e.HasAttended(id) {
		return nil
	}

	c, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return err
	}

	candidate := e.clone()
	candidate.AttendCourse(*c)
	if err := s.repo.Save(ctx, candidate); err != nil {
		s.logger.Error("attend course persist failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", e.ID.String()),
			zap.String("course_id", courseID),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	*e = *candidate
	return nil
}

// NotifyOfAbsence runs every subscriber. Delivery failures are reported as
// ErrAbsenceDelivery after all subscribers have been called.
func (s *service) NotifyOfAbsence(ctx context.Context, e *InternalEmployee) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("absence notified",
		zap.String("request_id", rid),
		zap.String("employee_id", e.ID.String()),
		zap.Int("subscribers", s.notifier.Subscribers()),
	)
	if s.metrics != nil {
		s.metrics.Absences.Inc()
	}

	if err := s.notifier.Notify(ctx, e); err != nil {
		s.logger.Warn("absence delivery failed",
			zap.String("request_id", rid),
			zap.String("employee_id", e.ID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", employeeerrors.ErrAbsenceDelivery, err)
	}
	return nil
}

func (s *service) SubscribeAbsence(h AbsenceHandler) Subscription {
	return s.notifier.Subscribe(h)
}

func (s *service) UnsubscribeAbsence(sub Subscription) {
	s.notifier.Unsubscribe(sub)
}

func (s *service) recordRaise(status string) {
	if s.metrics != nil {
		s.metrics.Raises.WithLabelValues(status).Inc()
	}
}

func (s *service) recordPromotion(result string) {
	if s.metrics != nil {
		s.metrics.Promotions.WithLabelValues(result).Inc()
	}
}
