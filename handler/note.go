package handler

import (
	"errors"
	"net/http"
	"strconv"

	"LearnHub/config"
	"LearnHub/dao/cache"
	"LearnHub/middleware"
	"LearnHub/pkg/context"
	"LearnHub/pkg/log"
	"LearnHub/pkg/response"
	"LearnHub/service"
	"LearnHub/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Note struct {
	Config      *config.Config
	Sessions    *cache.SessionStorage
	NoteService service.INoteService
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(n.Config.Jwt.Secret), n.Sessions)

	r.POST("/note", authorize, context.Wrap(n.FetchNotes))
	r.POST("/note/new", authorize, context.Wrap(n.CreateNote))
	r.POST("/note/edit", authorize, context.Wrap(n.EditNote))
	r.POST("/note/delete", authorize, context.Wrap(n.DeleteNote))
}

// FetchNotes 查询当前用户的课时笔记
func (n *Note) FetchNotes(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.FetchNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	notes, err := n.NoteService.FetchNotes(c.Request.Context(),
		strconv.FormatInt(userID, 10), req.CourseID, req.LessonID)
	if err != nil {
		log.L.Error("fetch notes failed", zap.Error(err))
		return response.NewError(http.StatusInternalServerError, "An error occured")
	}

	// no notes yet is its own outcome, not an empty 200
	if len(notes) == 0 {
		return response.NewError(http.StatusNotFound, "Notes empty!")
	}

	c.JSON(http.StatusOK, notes)
	return nil
}

// CreateNote 创建笔记
func (n *Note) CreateNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	_, err = n.NoteService.CreateNote(c.Request.Context(), strconv.FormatInt(userID, 10), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyInput) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Empty input fields!"})
			return nil
		}
		log.L.Error("create note failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, "An error occured")
		return nil
	}

	c.JSON(http.StatusCreated, gin.H{"message": "note saved!"})
	return nil
}

// EditNote 修改笔记
func (n *Note) EditNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.EditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": 0})
		return nil
	}

	modified, err := n.NoteService.EditNote(c.Request.Context(), strconv.FormatInt(userID, 10), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": 0})
		return nil
	}

	c.JSON(http.StatusCreated, gin.H{"msg": modified})
	return nil
}

// DeleteNote 删除笔记
func (n *Note) DeleteNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.DeleteNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "0"})
		return nil
	}

	deleted, err := n.NoteService.DeleteNote(c.Request.Context(), strconv.FormatInt(userID, 10), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "0"})
		return nil
	}

	c.JSON(http.StatusOK, gin.H{"msg": deleted})
	return nil
}
