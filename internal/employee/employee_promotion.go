package employee

import "context"

// Promoter decides promotion eligibility for an employee and, when eligible,
// raises the job level by one and persists it. A false result leaves the
// employee untouched.
//
//go:generate mockgen -source=employee_promotion.go -destination=mock/employee_promotion_mock.go -package=mock
type Promoter interface {
	PromoteInternalEmployee(ctx context.Context, e *InternalEmployee) (bool, error)
}
