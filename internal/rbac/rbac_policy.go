package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleManager  = "manager"
	RoleEmployee = "employee"

	ResourceEmployee = "employee"

	ActionCreate  = "create"
	ActionRead    = "read"
	ActionRaise   = "raise"
	ActionPromote = "promote"
	ActionAbsence = "absence"
	ActionCourse  = "course"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Policy is one role permission: sub may perform act on obj.
type Policy struct {
	Role     string
	Resource string
	Action   string
}

// DefaultPolicies grant managers the day-to-day actions on their reports and
// HR everything a manager can do plus hiring, raises and promotions. Admin
// inherits HR.
var DefaultPolicies = []Policy{
	{RoleEmployee, ResourceEmployee, ActionRead},

	{RoleManager, ResourceEmployee, ActionRead},
	{RoleManager, ResourceEmployee, ActionAbsence},
	{RoleManager, ResourceEmployee, ActionCourse},

	{RoleHR, ResourceEmployee, ActionCreate},
	{RoleHR, ResourceEmployee, ActionRaise},
	{RoleHR, ResourceEmployee, ActionPromote},
}

var defaultGroupings = [][2]string{
	{RoleHR, RoleManager},
	{RoleAdmin, RoleHR},
}

// NewEnforcer builds an in-memory casbin enforcer loaded with policies. A nil
// policies slice loads DefaultPolicies.
func NewEnforcer(policies []Policy) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if policies == nil {
		policies = DefaultPolicies
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return nil, err
		}
	}
	for _, g := range defaultGroupings {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
