package types

// Field names mirror what the web client has always sent.

type FetchNotesRequest struct {
	CourseID string `json:"courseId"`
	LessonID string `json:"lessonId"`
}

type CreateNoteRequest struct {
	CourseID string `json:"courseId"`
	LessonID string `json:"lessonId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type EditNoteRequest struct {
	CourseID string `json:"courseId"`
	LessonID string `json:"lessonId"`
	NoteID   string `json:"noteId"`
	Content  string `json:"content"`
}

type DeleteNoteRequest struct {
	CourseID string `json:"courseId"`
	LessonID string `json:"lessonId"`
	NoteID   string `json:"noteId"`
}
