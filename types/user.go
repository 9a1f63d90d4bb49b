package types

type EnrollRequest struct {
	CourseID string `json:"courseId"`
}
