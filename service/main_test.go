package service

import (
	"testing"

	"LearnHub/dao"
	"LearnHub/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Course{}, &models.Note{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newNoteService(t *testing.T) *NoteService {
	t.Helper()
	return &NoteService{NoteDAO: dao.NewNoteDAO(newTestDB(t))}
}

func newCourseService(t *testing.T) *CourseService {
	t.Helper()
	return &CourseService{CourseDAO: dao.NewCourses(newTestDB(t))}
}

func newUserService(t *testing.T) (*UserService, *dao.Users) {
	t.Helper()
	db := newTestDB(t)
	users := dao.NewUsers(db)
	return &UserService{UsersRepo: users, CourseDAO: dao.NewCourses(db)}, users
}
