package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/gifter/models"
	"github.com/cppla/gifter/repositories"
	"github.com/cppla/gifter/utils"
)

// withCommentsPrefix marks the nested reads: GetWithComments lists all posts,
// GetWithComments{id} loads one.
const withCommentsPrefix = "GetWithComments"

// PostController manages CRUD operations for posts.
type PostController struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
}

// NewPostController creates a new PostController instance.
func NewPostController(posts repositories.PostRepository, comments repositories.CommentRepository) *PostController {
	return &PostController{posts: posts, comments: comments}
}

// List returns all posts without comments, oldest first.
func (p *PostController) List(ctx *gin.Context) {
	posts, err := p.posts.GetAll(ctx.Request.Context())
	if err != nil {
		storeFailure(ctx, 50020, "failed to list posts", err)
		return
	}
	utils.Success(ctx, posts)
}

// Get returns one post, or dispatches the GetWithComments forms.
func (p *PostController) Get(ctx *gin.Context) {
	raw := ctx.Param("id")
	if raw == withCommentsPrefix {
		p.listWithComments(ctx)
		return
	}
	if strings.HasPrefix(raw, withCommentsPrefix) {
		p.getWithComments(ctx, strings.TrimPrefix(raw, withCommentsPrefix))
		return
	}

	id, ok := parseID(raw)
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid post id")
		return
	}
	post, err := p.posts.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
			return
		}
		storeFailure(ctx, 50021, "failed to load post", err)
		return
	}
	utils.Success(ctx, post)
}

func (p *PostController) listWithComments(ctx *gin.Context) {
	posts, err := p.posts.GetAllWithComments(ctx.Request.Context())
	if err != nil {
		storeFailure(ctx, 50022, "failed to list posts with comments", err)
		return
	}
	utils.Success(ctx, posts)
}

func (p *PostController) getWithComments(ctx *gin.Context, rawID string) {
	id, ok := parseID(rawID)
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid post id")
		return
	}
	post, err := p.posts.GetByIDWithComments(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
			return
		}
		storeFailure(ctx, 50023, "failed to load post with comments", err)
		return
	}
	utils.Success(ctx, post)
}

// ListComments returns the comments of one post.
func (p *PostController) ListComments(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid post id")
		return
	}
	comments, err := p.comments.GetByPostID(ctx.Request.Context(), id)
	if err != nil {
		storeFailure(ctx, 50024, "failed to list comments", err)
		return
	}
	utils.Success(ctx, comments)
}

// Create inserts a post and answers 201 with its location.
func (p *PostController) Create(ctx *gin.Context) {
	var post models.Post
	if err := ctx.ShouldBindJSON(&post); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid request payload")
		return
	}
	post.ID = 0
	post.Comments = nil
	sanitizePost(&post)

	if err := p.posts.Add(ctx.Request.Context(), &post); err != nil {
		storeFailure(ctx, 50025, "failed to create post", err)
		return
	}
	created(ctx, post.ID, post)
}

// Update overwrites the post. The body id must match the path id.
func (p *PostController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid post id")
		return
	}
	var post models.Post
	if err := ctx.ShouldBindJSON(&post); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40022, "invalid request payload")
		return
	}
	if post.ID != id {
		utils.Error(ctx, http.StatusBadRequest, 40023, "path id does not match body id")
		return
	}
	sanitizePost(&post)

	if err := p.posts.Update(ctx.Request.Context(), &post); err != nil {
		storeFailure(ctx, 50026, "failed to update post", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete removes the post; unknown ids still answer 204.
func (p *PostController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid post id")
		return
	}
	if err := p.posts.Delete(ctx.Request.Context(), id); err != nil {
		storeFailure(ctx, 50027, "failed to delete post", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func sanitizePost(post *models.Post) {
	post.Title = utils.Sanitize(strings.TrimSpace(post.Title))
	post.Caption = utils.Sanitize(post.Caption)
}
