package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prepository/internal/pkg/response"
	"prepository/internal/service"
)

type StoryHandler struct {
	stories *service.StoryService
}

func NewStoryHandler(stories *service.StoryService) *StoryHandler {
	return &StoryHandler{stories: stories}
}

type createStoryRequest struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Situation  string   `json:"situation"`
	Action     string   `json:"action"`
	Result     string   `json:"result"`
}

type updateStoryRequest struct {
	Title      *string   `json:"title"`
	Categories *[]string `json:"categories"`
	Situation  *string   `json:"situation"`
	Action     *string   `json:"action"`
	Result     *string   `json:"result"`
}

func (h *StoryHandler) Create(c *gin.Context) {
	var req createStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	story, err := h.stories.Create(c.Request.Context(), getUserID(c), service.StoryCreateInput{
		Title:      req.Title,
		Categories: req.Categories,
		Situation:  req.Situation,
		Action:     req.Action,
		Result:     req.Result,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, story)
}

func (h *StoryHandler) List(c *gin.Context) {
	stories, err := h.stories.List(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"stories": stories})
}

func (h *StoryHandler) Get(c *gin.Context) {
	story, err := h.stories.Get(c.Request.Context(), getUserID(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, story)
}

func (h *StoryHandler) Update(c *gin.Context) {
	var req updateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	story, err := h.stories.Update(c.Request.Context(), getUserID(c), c.Param("id"), service.StoryPatch{
		Title:      req.Title,
		Categories: req.Categories,
		Situation:  req.Situation,
		Action:     req.Action,
		Result:     req.Result,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, story)
}

func (h *StoryHandler) Delete(c *gin.Context) {
	if err := h.stories.Delete(c.Request.Context(), getUserID(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"ok": true})
}
