package promotion_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-empmgmt/internal/employee"
	employeemock "go-empmgmt/internal/employee/mock"
	"go-empmgmt/internal/promotion"
	promotionerrors "go-empmgmt/internal/promotion/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEmployee() *employee.InternalEmployee {
	return employee.NewInternalEmployee("Megan", "Jones", 2, decimal.NewFromInt(3000), false, 1)
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *map[string]any) {
	t.Helper()
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestClient_PromoteInternalEmployee(t *testing.T) {
	t.Run("eligible raises job level and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saver := employeemock.NewMockRepository(ctrl)
		srv, received := newServer(t, http.StatusOK, `{"EligibleForPromotion": true}`)

		e := newEmployee()
		saver.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, saved *employee.InternalEmployee) error {
				assert.Equal(t, 2, saved.JobLevel)
				assert.Equal(t, 1, e.JobLevel)
				return nil
			})

		client := promotion.NewClient(srv.Client(), srv.URL, time.Second, saver)
		promoted, err := client.PromoteInternalEmployee(context.Background(), e)

		require.NoError(t, err)
		assert.True(t, promoted)
		assert.Equal(t, 2, e.JobLevel)
		assert.Equal(t, e.ID.String(), (*received)["employeeId"])
		assert.Equal(t, "Megan Jones", (*received)["fullName"])
		assert.EqualValues(t, 1, (*received)["jobLevel"])
		assert.EqualValues(t, 2, (*received)["yearsInService"])
	})

	t.Run("camel case field is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saver := employeemock.NewMockRepository(ctrl)
		srv, _ := newServer(t, http.StatusOK, `{"eligibleForPromotion": true}`)
		saver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		e := newEmployee()
		promoted, err := promotion.NewClient(srv.Client(), srv.URL, time.Second, saver).
			PromoteInternalEmployee(context.Background(), e)

		require.NoError(t, err)
		assert.True(t, promoted)
		assert.Equal(t, 2, e.JobLevel)
	})

	t.Run("not eligible leaves employee unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saver := employeemock.NewMockRepository(ctrl)
		srv, _ := newServer(t, http.StatusOK, `{"eligibleForPromotion": false}`)

		e := newEmployee()
		promoted, err := promotion.NewClient(srv.Client(), srv.URL, time.Second, saver).
			PromoteInternalEmployee(context.Background(), e)

		require.NoError(t, err)
		assert.False(t, promoted)
		assert.Equal(t, 1, e.JobLevel)
	})

	t.Run("non 2xx is a service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saver := employeemock.NewMockRepository(ctrl)
		srv, _ := newServer(t, http.StatusInternalServerError, `oops`)

		e := newEmployee()
		promoted, err := promotion.NewClient(srv.Client(), srv.URL, time.Second, saver).
			PromoteInternalEmployee(context.Background(), e)

		assert.ErrorIs(t, err, promotionerrors.ErrPromotionService)
		assert.False(t, promoted)
		assert.Equal(t, 1, e.JobLevel)
	})

	t.Run("undecodable body is a serialization error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saver := employeemock.NewMockRepository(ctrl)

		for _, body := range []string{`not json`, `{}`, `{"EligibleForPromotion": "yes"}`} {
			srv, _ := newServer(t, http.StatusOK, body)

			e := newEmployee()
			_, err := promotion.NewClient(srv.Client(), srv.URL, time.Second, saver).
				PromoteInternalEmployee(context.Background(), e)

			assert.ErrorIs(t, err, promotionerrors.ErrPromotionSerialization, body)
			assert.Equal(t, 1, e.JobLevel)
		}
	})

	t.Run("unreachable endpoint is a service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saver := employeemock.NewMockRepository(ctrl)
		srv, _ := newServer(t, http.StatusOK, `{}`)
		url := srv.URL
		srv.Close()

		_, err := promotion.NewClient(nil, url, time.Second, saver).
			PromoteInternalEmployee(context.Background(), newEmployee())

		assert.ErrorIs(t, err, promotionerrors.ErrPromotionService)
	})

	t.Run("timeout is a service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saver := employeemock.NewMockRepository(ctrl)
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(srv.Close)
		t.Cleanup(func() { close(release) })

		e := newEmployee()
		_, err := promotion.NewClient(srv.Client(), srv.URL, 50*time.Millisecond, saver).
			PromoteInternalEmployee(context.Background(), e)

		assert.ErrorIs(t, err, promotionerrors.ErrPromotionService)
		assert.Equal(t, 1, e.JobLevel)
	})

	t.Run("cancelled context is a service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saver := employeemock.NewMockRepository(ctrl)
		srv, _ := newServer(t, http.StatusOK, `{"EligibleForPromotion": true}`)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := promotion.NewClient(srv.Client(), srv.URL, time.Second, saver).
			PromoteInternalEmployee(ctx, newEmployee())

		assert.ErrorIs(t, err, promotionerrors.ErrPromotionService)
	})

	t.Run("save failure leaves job level unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		saver := employeemock.NewMockRepository(ctrl)
		srv, _ := newServer(t, http.StatusOK, `{"EligibleForPromotion": true}`)
		saver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		e := newEmployee()
		promoted, err := promotion.NewClient(srv.Client(), srv.URL, time.Second, saver).
			PromoteInternalEmployee(context.Background(), e)

		assert.Error(t, err)
		assert.False(t, promoted)
		assert.Equal(t, 1, e.JobLevel)
	})
}
