package service

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"LearnHub/types"
)

func TestDeriveNoteKey(t *testing.T) {
	got := DeriveNoteKey("c1", "l1", "u1")
	if got != "c1l1u1" {
		t.Fatalf("expected c1l1u1, got %q", got)
	}

	// order sensitive
	if DeriveNoteKey("l1", "c1", "u1") == got {
		t.Fatal("key must depend on argument order")
	}
}

// The key is a plain concatenation with no separator, so distinct
// triples can coincide. That ambiguity is long-standing client-visible
// behavior; this test pins it so nobody "fixes" it silently.
func TestDeriveNoteKey_CollisionPreserved(t *testing.T) {
	a := DeriveNoteKey("1", "23", "u1")
	b := DeriveNoteKey("12", "3", "u1")
	if a != b {
		t.Fatalf("expected identical keys, got %q vs %q", a, b)
	}
}

func TestCreateNote_Truncation(t *testing.T) {
	s := newNoteService(t)

	note, err := s.CreateNote(context.Background(), "u1", &types.CreateNoteRequest{
		CourseID: "c1",
		LessonID: "l1",
		Title:    "HelloWorldLongTitle",
		Content:  strings.Repeat("x", 150),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if note.Title != "HelloW" {
		t.Fatalf("expected title HelloW, got %q", note.Title)
	}
	if len([]rune(note.Content)) != ContentMaxLen {
		t.Fatalf("expected content of %d chars, got %d", ContentMaxLen, len([]rune(note.Content)))
	}
	if note.CustomID != "c1l1u1" {
		t.Fatalf("expected customId c1l1u1, got %q", note.CustomID)
	}
}

// Truncation counts runes, not bytes, so a multibyte title keeps whole
// characters instead of being cut mid-sequence.
func TestCreateNote_TruncationMultibyte(t *testing.T) {
	s := newNoteService(t)

	note, err := s.CreateNote(context.Background(), "u1", &types.CreateNoteRequest{
		CourseID: "c1",
		LessonID: "l1",
		Title:    "学习笔记标题太长", // 8 runes
		Content:  strings.Repeat("记", ContentMaxLen+10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if note.Title != "学习笔记标题" {
		t.Fatalf("expected first %d runes kept, got %q", TitleMaxLen, note.Title)
	}
	if note.Content != strings.Repeat("记", ContentMaxLen) {
		t.Fatalf("expected content of %d runes, got %d", ContentMaxLen, len([]rune(note.Content)))
	}
}

func TestCreateNote_ShortFieldsKept(t *testing.T) {
	s := newNoteService(t)

	note, err := s.CreateNote(context.Background(), "u1", &types.CreateNoteRequest{
		CourseID: "c1",
		LessonID: "l1",
		Title:    "abc",
		Content:  "short note",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if note.Title != "abc" || note.Content != "short note" {
		t.Fatalf("short fields must pass through untouched, got %q / %q", note.Title, note.Content)
	}
}

func TestCreateNote_EmptyInput(t *testing.T) {
	s := newNoteService(t)

	cases := []struct {
		name     string
		callerID string
		req      types.CreateNoteRequest
	}{
		{"empty title", "u1", types.CreateNoteRequest{CourseID: "c1", LessonID: "l1", Title: "", Content: "c"}},
		{"whitespace title", "u1", types.CreateNoteRequest{CourseID: "c1", LessonID: "l1", Title: "   ", Content: "c"}},
		{"whitespace content", "u1", types.CreateNoteRequest{CourseID: "c1", LessonID: "l1", Title: "t", Content: " \t "}},
		{"empty course", "u1", types.CreateNoteRequest{CourseID: "", LessonID: "l1", Title: "t", Content: "c"}},
		{"whitespace course", "u1", types.CreateNoteRequest{CourseID: "  ", LessonID: "l1", Title: "t", Content: "c"}},
		{"empty lesson", "u1", types.CreateNoteRequest{CourseID: "c1", LessonID: "", Title: "t", Content: "c"}},
		{"empty caller", "", types.CreateNoteRequest{CourseID: "c1", LessonID: "l1", Title: "t", Content: "c"}},
	}

	for _, tc := range cases {
		if _, err := s.CreateNote(context.Background(), tc.callerID, &tc.req); err != ErrEmptyInput {
			t.Fatalf("%s: expected ErrEmptyInput, got %v", tc.name, err)
		}
	}
}

func TestFetchNotes_UserIsolation(t *testing.T) {
	s := newNoteService(t)
	ctx := context.Background()

	if _, err := s.CreateNote(ctx, "u1", &types.CreateNoteRequest{
		CourseID: "c1", LessonID: "l1", Title: "t", Content: "u1 note",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := s.FetchNotes(ctx, "u1", "c1", "l1")
	if err != nil {
		t.Fatalf("fetch own: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 note for owner, got %d", len(mine))
	}

	// same course and lesson, different caller: different derived key
	other, err := s.FetchNotes(ctx, "u2", "c1", "l1")
	if err != nil {
		t.Fatalf("fetch other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no notes for other user, got %d", len(other))
	}
}

func TestFetchNotes_MultiplePerKey(t *testing.T) {
	s := newNoteService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := s.CreateNote(ctx, "u1", &types.CreateNoteRequest{
			CourseID: "c1", LessonID: "l1", Title: "t", Content: "note " + strconv.Itoa(i),
		}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	notes, err := s.FetchNotes(ctx, "u1", "c1", "l1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("a key addresses a note list, expected 3, got %d", len(notes))
	}
}

func TestEditNote_DualMatch(t *testing.T) {
	s := newNoteService(t)
	ctx := context.Background()

	note, err := s.CreateNote(ctx, "u1", &types.CreateNoteRequest{
		CourseID: "c1", LessonID: "l1", Title: "t", Content: "original",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	noteID := strconv.FormatInt(note.ID, 10)

	// another user holding the real note id still touches zero rows
	modified, err := s.EditNote(ctx, "u2", &types.EditNoteRequest{
		CourseID: "c1", LessonID: "l1", NoteID: noteID, Content: "hijack",
	})
	if err != nil {
		t.Fatalf("edit as other: %v", err)
	}
	if modified != 0 {
		t.Fatalf("cross-user edit must modify 0 rows, got %d", modified)
	}

	// the owner with the same triple reproduces the key and succeeds
	modified, err = s.EditNote(ctx, "u1", &types.EditNoteRequest{
		CourseID: "c1", LessonID: "l1", NoteID: noteID, Content: "updated",
	})
	if err != nil {
		t.Fatalf("edit as owner: %v", err)
	}
	if modified != 1 {
		t.Fatalf("owner edit must modify 1 row, got %d", modified)
	}

	notes, _ := s.FetchNotes(ctx, "u1", "c1", "l1")
	if len(notes) != 1 || notes[0].Content != "updated" {
		t.Fatalf("content not updated: %+v", notes)
	}
}

func TestDeleteNote_DualMatch(t *testing.T) {
	s := newNoteService(t)
	ctx := context.Background()

	note, err := s.CreateNote(ctx, "u1", &types.CreateNoteRequest{
		CourseID: "c1", LessonID: "l1", Title: "t", Content: "keep me",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	noteID := strconv.FormatInt(note.ID, 10)

	deleted, err := s.DeleteNote(ctx, "u2", &types.DeleteNoteRequest{
		CourseID: "c1", LessonID: "l1", NoteID: noteID,
	})
	if err != nil {
		t.Fatalf("delete as other: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("cross-user delete must remove 0 rows, got %d", deleted)
	}

	deleted, err = s.DeleteNote(ctx, "u1", &types.DeleteNoteRequest{
		CourseID: "c1", LessonID: "l1", NoteID: noteID,
	})
	if err != nil {
		t.Fatalf("delete as owner: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("owner delete must remove 1 row, got %d", deleted)
	}
}

func TestEditNote_MalformedID(t *testing.T) {
	s := newNoteService(t)

	modified, err := s.EditNote(context.Background(), "u1", &types.EditNoteRequest{
		CourseID: "c1", LessonID: "l1", NoteID: "not-a-number", Content: "x",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if modified != 0 {
		t.Fatalf("malformed id must modify 0 rows, got %d", modified)
	}
}
