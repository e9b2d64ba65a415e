package promotion

type eligibilityRequest struct {
	EmployeeID     string `json:"employeeId"`
	FullName       string `json:"fullName"`
	JobLevel       int    `json:"jobLevel"`
	YearsInService int    `json:"yearsInService"`
}

// eligibilityResponse relies on encoding/json matching keys
// case-insensitively, so eligibleForPromotion is accepted too.
type eligibilityResponse struct {
	EligibleForPromotion *bool `json:"EligibleForPromotion"`
}
