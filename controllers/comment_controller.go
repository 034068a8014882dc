package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/gifter/models"
	"github.com/cppla/gifter/repositories"
	"github.com/cppla/gifter/utils"
)

// CommentController manages comments on posts.
type CommentController struct {
	comments repositories.CommentRepository
}

func NewCommentController(comments repositories.CommentRepository) *CommentController {
	return &CommentController{comments: comments}
}

func (c *CommentController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid comment id")
		return
	}
	comment, err := c.comments.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40430, "comment not found")
			return
		}
		storeFailure(ctx, 50030, "failed to load comment", err)
		return
	}
	utils.Success(ctx, comment)
}

func (c *CommentController) Create(ctx *gin.Context) {
	var comment models.Comment
	if err := ctx.ShouldBindJSON(&comment); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
		return
	}
	comment.ID = 0
	comment.Message = utils.Sanitize(comment.Message)

	if err := c.comments.Add(ctx.Request.Context(), &comment); err != nil {
		storeFailure(ctx, 50031, "failed to create comment", err)
		return
	}
	created(ctx, comment.ID, comment)
}

func (c *CommentController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid comment id")
		return
	}
	var comment models.Comment
	if err := ctx.ShouldBindJSON(&comment); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40032, "invalid request payload")
		return
	}
	if comment.ID != id {
		utils.Error(ctx, http.StatusBadRequest, 40033, "path id does not match body id")
		return
	}
	comment.Message = utils.Sanitize(comment.Message)

	if err := c.comments.Update(ctx.Request.Context(), &comment); err != nil {
		storeFailure(ctx, 50032, "failed to update comment", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *CommentController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid comment id")
		return
	}
	if err := c.comments.Delete(ctx.Request.Context(), id); err != nil {
		storeFailure(ctx, 50033, "failed to delete comment", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
