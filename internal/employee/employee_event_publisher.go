package employee

import (
	"context"
	"encoding/json"

	"go-empmgmt/internal/events"
	"go-empmgmt/internal/messaging/kafka"
	"go-empmgmt/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewOutboxAbsenceHandler returns a subscriber that queues every absence as
// an employee_absent outbox row; the worker relays it to Kafka.
func NewOutboxAbsenceHandler(outbox kafka.OutboxRepository, logger ...*zap.Logger) AbsenceHandler {
	l := zap.L().Named("employee.absence.outbox")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.absence.outbox")
	}

	return func(ctx context.Context, ev AbsenceEvent) error {
		rid := contextutil.GetRequestID(ctx)
		event := events.EmployeeAbsentEvent{
			EventType:  "employee_absent",
			RequestID:  rid,
			EmployeeID: ev.Employee.ID.String(),
			FullName:   ev.Employee.FullName(),
			OccurredAt: ev.OccurredAt,
		}

		payload, err := json.Marshal(event)
		if err != nil {
			l.Error("marshal absence event failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		if err := outbox.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   event.EmployeeID,
			EventType:     event.EventType,
			Topic:         events.EmployeeAbsenceTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			l.Error("queue absence event failed",
				zap.String("request_id", rid),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			return err
		}

		l.Debug("absence event queued",
			zap.String("request_id", rid),
			zap.String("employee_id", event.EmployeeID),
		)
		return nil
	}
}
