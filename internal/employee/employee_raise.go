package employee

import (
	"fmt"

	employeeerrors "go-empmgmt/internal/employee/errors"

	"github.com/shopspring/decimal"
)

var DefaultMinimumRaise = decimal.NewFromInt(100)

type RaisePolicy struct {
	Minimum decimal.Decimal
}

func NewRaisePolicy(minimum decimal.Decimal) RaisePolicy {
	return RaisePolicy{Minimum: minimum}
}

// ApplyRaise adds amount to e's salary. Amounts below the minimum fail with
// ErrInvalidRaise and leave e untouched. MinimumRaiseGiven tracks whether
// the latest raise was exactly the minimum.
func (p RaisePolicy) ApplyRaise(e *InternalEmployee, amount decimal.Decimal) error {
	if amount.LessThan(p.Minimum) {
		return fmt.Errorf("%w: raise %s is below the minimum of %s",
			employeeerrors.ErrInvalidRaise, amount.String(), p.Minimum.String())
	}

	e.Salary = e.Salary.Add(amount)
	e.MinimumRaiseGiven = amount.Equal(p.Minimum)
	return nil
}
