package employee_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-empmgmt/internal/course"
	courseerrors "go-empmgmt/internal/course/errors"
	courseMock "go-empmgmt/internal/course/mock"
	"go-empmgmt/internal/employee"
	employeeerrors "go-empmgmt/internal/employee/errors"
	employeeMock "go-empmgmt/internal/employee/mock"
	"go-empmgmt/internal/metrics"
	promotionerrors "go-empmgmt/internal/promotion/errors"
	"go-empmgmt/internal/shared/apperror"

	"github.com/brianvoe/gofakeit"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service    employee.Service
	repo       *employeeMock.MockRepository
	courses    *courseMock.MockRepository
	obligatory *courseMock.MockObligatoryPolicy
	promoter   *employeeMock.MockPromoter
	metrics    *metrics.Metrics
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	deps := &serviceDeps{
		repo:       employeeMock.NewMockRepository(ctrl),
		courses:    courseMock.NewMockRepository(ctrl),
		obligatory: courseMock.NewMockObligatoryPolicy(ctrl),
		promoter:   employeeMock.NewMockPromoter(ctrl),
		metrics:    metrics.NewMetrics(prometheus.NewRegistry()),
	}
	deps.service = employee.NewService(employee.Dependencies{
		Repo:       deps.repo,
		Courses:    deps.courses,
		Obligatory: deps.obligatory,
		Factory:    employee.NewFactory(),
		Raises:     employee.NewRaisePolicy(employee.DefaultMinimumRaise),
		Promoter:   deps.promoter,
		Metrics:    deps.metrics,
	})
	return deps
}

func obligatoryCourses() []course.Course {
	return []course.Course{
		{ID: course.DefaultObligatoryCourseIDs[0], Title: "Company Introduction"},
		{ID: course.DefaultObligatoryCourseIDs[1], Title: "Respecting Your Colleagues", IsNew: true},
	}
}

func newEmployee(salary int64) *employee.InternalEmployee {
	return employee.NewInternalEmployee(gofakeit.FirstName(), gofakeit.LastName(), 2, decimal.NewFromInt(salary), false, 1)
}

func TestEmployeeService_CreateInternalEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("success attends obligatory courses", func(t *testing.T) {
		deps := setupServiceTest(t)
		first, last := gofakeit.FirstName(), gofakeit.LastName()

		deps.obligatory.EXPECT().GetObligatoryCourses(ctx).Return(obligatoryCourses(), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		e, err := deps.service.CreateInternalEmployee(ctx, first, last)

		require.NoError(t, err)
		assert.Equal(t, first+" "+last, e.FullName())
		require.Len(t, e.AttendedCourses, 2)
		assert.Equal(t, course.DefaultObligatoryCourseIDs[0], e.AttendedCourses[0].ID)
		assert.Equal(t, course.DefaultObligatoryCourseIDs[1], e.AttendedCourses[1].ID)
		for _, c := range e.AttendedCourses {
			assert.False(t, c.IsNew)
		}
		assert.True(t, decimal.NewFromInt(200).Equal(e.SuggestedBonus()))
		assert.InDelta(t, 1, testutil.ToFloat64(deps.metrics.EmployeesCreated), 0)
	})

	t.Run("uses injected factory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		factory := employeeMock.NewMockFactory(ctrl)
		deps := setupServiceTest(t)
		svc := employee.NewService(employee.Dependencies{
			Repo:       deps.repo,
			Obligatory: deps.obligatory,
			Factory:    factory,
			Raises:     employee.NewRaisePolicy(employee.DefaultMinimumRaise),
		})

		fixture := employee.NewInternalEmployee("Kevin", "Dockx", 3, decimal.NewFromInt(4000), false, 2)
		factory.EXPECT().CreateEmployee("Kevin", "Dockx").Return(fixture)
		deps.obligatory.EXPECT().GetObligatoryCourses(ctx).Return(obligatoryCourses(), nil)
		deps.repo.EXPECT().Create(ctx, fixture).Return(nil)

		e, err := svc.CreateInternalEmployee(ctx, "Kevin", "Dockx")

		require.NoError(t, err)
		assert.Same(t, fixture, e)
		assert.True(t, decimal.NewFromInt(600).Equal(e.SuggestedBonus()))
	})

	t.Run("obligatory course lookup fails", func(t *testing.T) {
		deps := setupServiceTest(t)
		lookupErr := errors.New("catalog down")
		deps.obligatory.EXPECT().GetObligatoryCourses(ctx).Return(nil, lookupErr)

		_, err := deps.service.CreateInternalEmployee(ctx, "A", "B")

		assert.ErrorIs(t, err, lookupErr)
	})

	t.Run("duplicate maps to already exists", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.obligatory.EXPECT().GetObligatoryCourses(ctx).Return(obligatoryCourses(), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := deps.service.CreateInternalEmployee(ctx, "A", "B")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("async form resolves to the same result", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.obligatory.EXPECT().GetObligatoryCourses(gomock.Any()).Return(obligatoryCourses(), nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		e, err := deps.service.CreateInternalEmployeeAsync(ctx, "Brooklyn", "Cannon").Await(ctx)

		require.NoError(t, err)
		assert.Len(t, e.AttendedCourses, 2)
	})
}

func TestEmployeeService_FetchInternalEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		deps := setupServiceTest(t)
		want := newEmployee(3000)
		want.AttendedCourses = obligatoryCourses()
		deps.repo.EXPECT().FindByID(ctx, want.ID).Return(want, nil)

		got, err := deps.service.FetchInternalEmployee(ctx, want.ID.String())

		require.NoError(t, err)
		assert.Same(t, want, got)
		assert.True(t, decimal.NewFromInt(400).Equal(got.SuggestedBonus()), "bonus = %s", got.SuggestedBonus())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		got, err := deps.service.FetchInternalEmployee(ctx, id.String())

		assert.Nil(t, got)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.Equal(t, 404, apperror.ToHTTP(err).Status)
	})

	t.Run("invalid id never reaches the repository", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.FetchInternalEmployee(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("async not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.FetchInternalEmployeeAsync(ctx, uuid.NewString()).Await(ctx)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_GiveRaise(t *testing.T) {
	ctx := context.Background()

	t.Run("minimum raise sets flag", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, saved *employee.InternalEmployee) error {
				assert.NotSame(t, e, saved)
				assert.True(t, decimal.NewFromInt(3100).Equal(saved.Salary))
				return nil
			})

		err := deps.service.GiveRaise(ctx, e, decimal.NewFromInt(100))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(3100).Equal(e.Salary))
		assert.True(t, e.MinimumRaiseGiven)
		assert.InDelta(t, 1, testutil.ToFloat64(deps.metrics.Raises.WithLabelValues(metrics.RaiseApplied)), 0)
	})

	t.Run("above minimum clears flag", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)
		e.MinimumRaiseGiven = true
		deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		require.NoError(t, deps.service.GiveRaise(ctx, e, decimal.NewFromInt(200)))

		assert.True(t, decimal.NewFromInt(3200).Equal(e.Salary))
		assert.False(t, e.MinimumRaiseGiven)
	})

	t.Run("below minimum is rejected without persisting", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)

		err := deps.service.GiveRaise(ctx, e, decimal.NewFromInt(50))

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidRaise)
		assert.True(t, decimal.NewFromInt(3000).Equal(e.Salary))
		assert.Equal(t, 422, apperror.ToHTTP(err).Status)
		assert.InDelta(t, 1, testutil.ToFloat64(deps.metrics.Raises.WithLabelValues(metrics.RaiseRejected)), 0)
	})

	t.Run("persist failure leaves employee unchanged", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("db down"))

		err := deps.service.GiveRaise(ctx, e, decimal.NewFromInt(500))

		assert.Error(t, err)
		assert.True(t, decimal.NewFromInt(3000).Equal(e.Salary))
		assert.False(t, e.MinimumRaiseGiven)
	})

	t.Run("async rejection surfaces on await", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)

		_, err := deps.service.GiveRaiseAsync(ctx, e, decimal.NewFromInt(50)).Await(ctx)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidRaise)
		assert.True(t, decimal.NewFromInt(3000).Equal(e.Salary))
	})

	t.Run("async raise applies after await", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.GiveRaiseAsync(ctx, e, decimal.NewFromInt(100)).Await(ctx)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(3100).Equal(e.Salary))
	})
}

func TestEmployeeService_Promote(t *testing.T) {
	ctx := context.Background()

	t.Run("eligible", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)
		deps.promoter.EXPECT().PromoteInternalEmployee(ctx, e).
			DoAndReturn(func(_ context.Context, e *employee.InternalEmployee) (bool, error) {
				e.JobLevel++
				return true, nil
			})

		promoted, err := deps.service.Promote(ctx, e)

		require.NoError(t, err)
		assert.True(t, promoted)
		assert.Equal(t, 2, e.JobLevel)
		assert.InDelta(t, 1, testutil.ToFloat64(deps.metrics.Promotions.WithLabelValues(metrics.PromotionPromoted)), 0)
	})

	t.Run("not eligible", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)
		deps.promoter.EXPECT().PromoteInternalEmployee(ctx, e).Return(false, nil)

		promoted, err := deps.service.Promote(ctx, e)

		require.NoError(t, err)
		assert.False(t, promoted)
		assert.Equal(t, 1, e.JobLevel)
		assert.InDelta(t, 1, testutil.ToFloat64(deps.metrics.Promotions.WithLabelValues(metrics.PromotionNotEligible)), 0)
	})

	t.Run("service failure passes through", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)
		deps.promoter.EXPECT().PromoteInternalEmployee(gomock.Any(), e).Return(false, promotionerrors.ErrPromotionService)

		promoted, err := deps.service.PromoteAsync(ctx, e).Await(ctx)

		assert.ErrorIs(t, err, promotionerrors.ErrPromotionService)
		assert.False(t, promoted)
		assert.Equal(t, 502, apperror.ToHTTP(err).Status)
		assert.InDelta(t, 1, testutil.ToFloat64(deps.metrics.Promotions.WithLabelValues(metrics.PromotionFailed)), 0)
	})

	t.Run("await gives up when its context ends", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)
		release := make(chan struct{})
		deps.promoter.EXPECT().PromoteInternalEmployee(gomock.Any(), e).
			DoAndReturn(func(context.Context, *employee.InternalEmployee) (bool, error) {
				<-release
				return false, nil
			})

		future := deps.service.PromoteAsync(ctx, e)
		waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		_, err := future.Await(waitCtx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		close(release)
		<-future.Done()
	})
}

func TestEmployeeService_AttendCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("attends and persists", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)
		c := course.NewCourse("Go for HR")
		c.IsNew = true
		deps.courses.EXPECT().FindByID(ctx, c.ID).Return(&c, nil)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		require.NoError(t, deps.service.AttendCourse(ctx, e, c.ID.String()))

		require.Len(t, e.AttendedCourses, 1)
		assert.False(t, e.AttendedCourses[0].IsNew)
	})

	t.Run("already attended is a no-op", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)
		c := course.NewCourse("Go for HR")
		e.AttendCourse(c)

		require.NoError(t, deps.service.AttendCourse(ctx, e, c.ID.String()))
		assert.Len(t, e.AttendedCourses, 1)
	})

	t.Run("unknown course", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := newEmployee(3000)
		id := uuid.New()
		deps.courses.EXPECT().FindByID(ctx, id).Return(nil, courseerrors.ErrCourseNotFound)

		err := deps.service.AttendCourse(ctx, e, id.String())

		assert.ErrorIs(t, err, courseerrors.ErrCourseNotFound)
		assert.Empty(t, e.AttendedCourses)
	})

	t.Run("invalid course id", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.AttendCourse(ctx, newEmployee(3000), "nope")

		assert.ErrorIs(t, err, courseerrors.ErrInvalidCourseID)
	})
}

func TestEmployeeService_NotifyOfAbsence(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	e := newEmployee(3000)

	require.NoError(t, deps.service.NotifyOfAbsence(ctx, e))

	var mu sync.Mutex
	var seen []*employee.InternalEmployee
	sub := deps.service.SubscribeAbsence(func(_ context.Context, ev employee.AbsenceEvent) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, ev.Employee)
		return nil
	})

	require.NoError(t, deps.service.NotifyOfAbsence(ctx, e))
	assert.Equal(t, []*employee.InternalEmployee{e}, seen)

	deps.service.UnsubscribeAbsence(sub)
	require.NoError(t, deps.service.NotifyOfAbsence(ctx, e))
	assert.Len(t, seen, 1)

	assert.InDelta(t, 3, testutil.ToFloat64(deps.metrics.Absences), 0)
}

func TestEmployeeService_NotifyOfAbsence_DeliveryFailure(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	e := newEmployee(3000)
	outboxDown := errors.New("outbox down")

	calls := 0
	deps.service.SubscribeAbsence(func(context.Context, employee.AbsenceEvent) error {
		calls++
		return outboxDown
	})
	deps.service.SubscribeAbsence(func(context.Context, employee.AbsenceEvent) error {
		calls++
		return nil
	})

	err := deps.service.NotifyOfAbsence(ctx, e)

	assert.ErrorIs(t, err, employeeerrors.ErrAbsenceDelivery)
	assert.ErrorIs(t, err, outboxDown)
	assert.Equal(t, 503, apperror.ToHTTP(err).Status)
	assert.Equal(t, 2, calls)
}
