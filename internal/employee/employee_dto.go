package employee

import (
	"time"

	"go-empmgmt/internal/course"
)

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
}

type RaiseRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type AttendCourseRequest struct {
	CourseID string `json:"course_id" binding:"required,uuid"`
}

type CourseResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type EmployeeResponse struct {
	ID                string           `json:"id"`
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	FullName          string           `json:"full_name"`
	Salary            string           `json:"salary"`
	JobLevel          int              `json:"job_level"`
	YearsInService    int              `json:"years_in_service"`
	MinimumRaiseGiven bool             `json:"minimum_raise_given"`
	SuggestedBonus    string           `json:"suggested_bonus"`
	AttendedCourses   []CourseResponse `json:"attended_courses"`
}

type PromotionResponse struct {
	Promoted bool             `json:"promoted"`
	Employee EmployeeResponse `json:"employee"`
}

type AbsenceResponse struct {
	EmployeeID string    `json:"employee_id"`
	NotifiedAt time.Time `json:"notified_at"`
}

func toCourseResponses(courses []course.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, CourseResponse{ID: c.ID.String(), Title: c.Title})
	}
	return out
}

func toEmployeeResponse(e *InternalEmployee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID.String(),
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		FullName:          e.FullName(),
		Salary:            e.Salary.StringFixed(2),
		JobLevel:          e.JobLevel,
		YearsInService:    e.YearsInService,
		MinimumRaiseGiven: e.MinimumRaiseGiven,
		SuggestedBonus:    e.SuggestedBonus().StringFixed(2),
		AttendedCourses:   toCourseResponses(e.AttendedCourses),
	}
}
