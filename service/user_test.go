package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"LearnHub/dao"
	"LearnHub/models"
	"LearnHub/pkg/snowflake"

	"gorm.io/datatypes"
)

func seedUser(t *testing.T, users *dao.Users) *models.User {
	t.Helper()
	user := &models.User{
		ID:             snowflake.GenUserID(),
		Username:       "gopher",
		Name:           "Gopher",
		Password:       "irrelevant",
		CourseEnrolled: datatypes.NewJSONSlice([]string{}),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestEnroll_NoReferentialCheck(t *testing.T) {
	s, users := newUserService(t)
	user := seedUser(t, users)

	// the course id points at nothing; enrollment still succeeds
	if err := s.Enroll(context.Background(), user.ID, "ghost-course"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	stored, err := users.FindById(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(stored.CourseEnrolled) != 1 || stored.CourseEnrolled[0] != "ghost-course" {
		t.Fatalf("expected [ghost-course], got %v", stored.CourseEnrolled)
	}
}

func TestEnroll_AppendsDuplicates(t *testing.T) {
	s, users := newUserService(t)
	user := seedUser(t, users)
	ctx := context.Background()

	if err := s.Enroll(ctx, user.ID, "c1"); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	if err := s.Enroll(ctx, user.ID, "c1"); err != nil {
		t.Fatalf("second enroll: %v", err)
	}

	stored, err := users.FindById(ctx, user.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(stored.CourseEnrolled) != 2 {
		t.Fatalf("append-only list must keep duplicates, got %v", stored.CourseEnrolled)
	}
}

func TestEnroll_UserMissing(t *testing.T) {
	s, _ := newUserService(t)

	if err := s.Enroll(context.Background(), 424242, "c1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDashboard(t *testing.T) {
	s, users := newUserService(t)
	user := seedUser(t, users)
	ctx := context.Background()

	courseSvc := &CourseService{CourseDAO: s.CourseDAO}
	if _, err := courseSvc.CreateCourse(ctx, validCourse("c1", "Go Basics")); err != nil {
		t.Fatalf("create course: %v", err)
	}

	// one enrolled course plus one dangling id
	if err := s.Enroll(ctx, user.ID, "c1"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := s.Enroll(ctx, user.ID, "deleted-course"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	courses, err := s.Dashboard(ctx, user.ID)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != "c1" {
		t.Fatalf("expected only c1, got %+v", courses)
	}
}
