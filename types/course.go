package types

import "encoding/json"

type SearchRequest struct {
	SearchText string `json:"searchText"`
}

type CreateCourseRequest struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Creator     string          `json:"creator"`
	Rating      float64         `json:"rating"`
	Category    string          `json:"category"`
	SubCategory string          `json:"sub_category"`
	Language    string          `json:"language"`
	CoursePic   string          `json:"course_pic"`
	Info        string          `json:"info"`
	Lessons     json.RawMessage `json:"lessons"`
}
