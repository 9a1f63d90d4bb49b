package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"LearnHub/dao"
	"LearnHub/models"
	"LearnHub/pkg/snowflake"
	"LearnHub/types"
)

const (
	// hard size caps applied on create; anything longer is cut, not rejected
	TitleMaxLen   = 6
	ContentMaxLen = 100
)

// ErrEmptyInput is returned when a required field is empty after trimming.
var ErrEmptyInput = errors.New("Empty input fields!")

// DeriveNoteKey builds the addressing key for a user's notes on one
// lesson: courseId, lessonId and userId concatenated in that order with
// no separator. The key is what scopes every note operation to its
// owner; a caller who cannot reproduce the key cannot touch the note.
//
// Because there is no separator, distinct triples can collide
// ("1","23" and "12","3" both give "123" for the same user). The web
// client has always produced keys this way, so the behavior is kept.
func DeriveNoteKey(courseID, lessonID, userID string) string {
	return courseID + lessonID + userID
}

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	FetchNotes(ctx context.Context, callerID, courseID, lessonID string) ([]*models.Note, error)
	CreateNote(ctx context.Context, callerID string, req *types.CreateNoteRequest) (*models.Note, error)
	EditNote(ctx context.Context, callerID string, req *types.EditNoteRequest) (int64, error)
	DeleteNote(ctx context.Context, callerID string, req *types.DeleteNoteRequest) (int64, error)
}

type NoteService struct {
	NoteDAO *dao.NoteDAO
}

// FetchNotes 查询当前用户在某课程某课时下的全部笔记
func (s *NoteService) FetchNotes(ctx context.Context, callerID, courseID, lessonID string) ([]*models.Note, error) {
	customID := DeriveNoteKey(courseID, lessonID, callerID)
	return s.NoteDAO.FindByCustomID(ctx, customID)
}

// CreateNote 创建笔记
func (s *NoteService) CreateNote(ctx context.Context, callerID string, req *types.CreateNoteRequest) (*models.Note, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	// all five must be non-empty once trimmed; ids are validated trimmed
	// but stored raw, title/content are stored trimmed
	if strings.TrimSpace(req.CourseID) == "" || strings.TrimSpace(req.LessonID) == "" ||
		strings.TrimSpace(callerID) == "" || title == "" || content == "" {
		return nil, ErrEmptyInput
	}

	note := &models.Note{
		ID:        snowflake.GenID(),
		CustomID:  DeriveNoteKey(req.CourseID, req.LessonID, callerID),
		Title:     truncate(title, TitleMaxLen),
		Content:   truncate(content, ContentMaxLen),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.NoteDAO.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// EditNote 修改笔记内容，返回受影响行数
func (s *NoteService) EditNote(ctx context.Context, callerID string, req *types.EditNoteRequest) (int64, error) {
	noteID, err := strconv.ParseInt(req.NoteID, 10, 64)
	if err != nil {
		// a malformed id cannot address any note
		return 0, nil
	}
	customID := DeriveNoteKey(req.CourseID, req.LessonID, callerID)
	return s.NoteDAO.UpdateContent(ctx, noteID, customID, req.Content)
}

// DeleteNote 删除笔记，返回删除条数
func (s *NoteService) DeleteNote(ctx context.Context, callerID string, req *types.DeleteNoteRequest) (int64, error) {
	noteID, err := strconv.ParseInt(req.NoteID, 10, 64)
	if err != nil {
		return 0, nil
	}
	customID := DeriveNoteKey(req.CourseID, req.LessonID, callerID)
	return s.NoteDAO.Delete(ctx, noteID, customID)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
