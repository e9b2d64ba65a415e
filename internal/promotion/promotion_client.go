package promotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-empmgmt/internal/employee"
	promotionerrors "go-empmgmt/internal/promotion/errors"
	"go-empmgmt/internal/shared/contextutil"

	"go.uber.org/zap"
)

const maxResponseBytes = 1 << 20

// Saver persists an employee whose job level changed.
type Saver interface {
	Save(ctx context.Context, e *employee.InternalEmployee) error
}

// Client asks the external eligibility service whether an employee may be
// promoted. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
	saver      Saver
	logger     *zap.Logger
}

// NewClient returns a Client posting to endpoint. A zero timeout leaves the
// caller's context deadline as the only limit.
func NewClient(httpClient *http.Client, endpoint string, timeout time.Duration, saver Saver, logger ...*zap.Logger) *Client {
	l := zap.L().Named("promotion.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("promotion.client")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		timeout:    timeout,
		saver:      saver,
		logger:     l,
	}
}

var _ employee.Promoter = (*Client)(nil)

// PromoteInternalEmployee raises e's job level by one when the service says
// it is eligible. e is only changed after the new level is saved; on any
// error it is left as it was.
func (c *Client) PromoteInternalEmployee(ctx context.Context, e *employee.InternalEmployee) (bool, error) {
	eligible, err := c.checkEligibility(ctx, e)
	if err != nil {
		return false, err
	}
	if !eligible {
		return false, nil
	}

	promoted := *e
	promoted.JobLevel++
	if err := c.saver.Save(ctx, &promoted); err != nil {
		return false, err
	}

	*e = promoted
	return true, nil
}

func (c *Client) checkEligibility(ctx context.Context, e *employee.InternalEmployee) (bool, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(eligibilityRequest{
		EmployeeID:     e.ID.String(),
		FullName:       e.FullName(),
		JobLevel:       e.JobLevel,
		YearsInService: e.YearsInService,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", promotionerrors.ErrPromotionSerialization, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("%w: %v", promotionerrors.ErrPromotionService, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("promotion eligibility request failed",
			zap.String("employee_id", e.ID.String()),
			zap.Error(err),
		)
		return false, fmt.Errorf("%w: %v", promotionerrors.ErrPromotionService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("promotion eligibility unexpected status",
			zap.String("employee_id", e.ID.String()),
			zap.Int("status", resp.StatusCode),
		)
		return false, fmt.Errorf("%w: status %d", promotionerrors.ErrPromotionService, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return false, fmt.Errorf("%w: %v", promotionerrors.ErrPromotionService, err)
	}

	var out eligibilityResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return false, fmt.Errorf("%w: %v", promotionerrors.ErrPromotionSerialization, err)
	}
	if out.EligibleForPromotion == nil {
		return false, fmt.Errorf("%w: EligibleForPromotion missing", promotionerrors.ErrPromotionSerialization)
	}

	c.logger.Debug("promotion eligibility decided",
		zap.String("employee_id", e.ID.String()),
		zap.Bool("eligible", *out.EligibleForPromotion),
	)
	return *out.EligibleForPromotion, nil
}
