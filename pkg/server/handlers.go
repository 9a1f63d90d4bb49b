package server

import (
	"LearnHub/handler"
)

type Handlers struct {
	Auth   *handler.Auth
	User   *handler.User
	Course *handler.Course
	Note   *handler.Note
}
