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

// withPostsPrefix marks the nested read, e.g. /api/userprofile/GetWithPosts5.
const withPostsPrefix = "GetWithPosts"

// UserProfileController exposes CRUD over user profiles.
type UserProfileController struct {
	profiles repositories.UserProfileRepository
}

// NewUserProfileController creates a new UserProfileController instance.
func NewUserProfileController(profiles repositories.UserProfileRepository) *UserProfileController {
	return &UserProfileController{profiles: profiles}
}

// List returns all profiles, oldest first.
func (u *UserProfileController) List(ctx *gin.Context) {
	profiles, err := u.profiles.GetAll(ctx.Request.Context())
	if err != nil {
		storeFailure(ctx, 50010, "failed to list profiles", err)
		return
	}
	utils.Success(ctx, profiles)
}

// Get returns one profile. A GetWithPosts{id} segment returns it with posts and comments.
func (u *UserProfileController) Get(ctx *gin.Context) {
	raw := ctx.Param("id")
	if strings.HasPrefix(raw, withPostsPrefix) {
		u.getWithPosts(ctx, strings.TrimPrefix(raw, withPostsPrefix))
		return
	}

	id, ok := parseID(raw)
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid profile id")
		return
	}
	profile, err := u.profiles.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40410, "profile not found")
			return
		}
		storeFailure(ctx, 50011, "failed to load profile", err)
		return
	}
	utils.Success(ctx, profile)
}

func (u *UserProfileController) getWithPosts(ctx *gin.Context, rawID string) {
	id, ok := parseID(rawID)
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid profile id")
		return
	}
	profile, err := u.profiles.GetByIDWithPosts(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40410, "profile not found")
			return
		}
		storeFailure(ctx, 50012, "failed to load profile with posts", err)
		return
	}
	utils.Success(ctx, profile)
}

// Create inserts a profile and answers 201 with its location.
func (u *UserProfileController) Create(ctx *gin.Context) {
	var profile models.UserProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40011, "invalid request payload")
		return
	}
	profile.ID = 0
	profile.Posts = nil
	profile.Bio = utils.Sanitize(profile.Bio)

	if err := u.profiles.Add(ctx.Request.Context(), &profile); err != nil {
		storeFailure(ctx, 50013, "failed to create profile", err)
		return
	}
	created(ctx, profile.ID, profile)
}

// Update overwrites the profile. The body id must match the path id.
func (u *UserProfileController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid profile id")
		return
	}
	var profile models.UserProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40012, "invalid request payload")
		return
	}
	if profile.ID != id {
		utils.Error(ctx, http.StatusBadRequest, 40013, "path id does not match body id")
		return
	}
	profile.Bio = utils.Sanitize(profile.Bio)

	if err := u.profiles.Update(ctx.Request.Context(), &profile); err != nil {
		storeFailure(ctx, 50014, "failed to update profile", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete removes the profile; unknown ids still answer 204.
func (u *UserProfileController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid profile id")
		return
	}
	if err := u.profiles.Delete(ctx.Request.Context(), id); err != nil {
		storeFailure(ctx, 50015, "failed to delete profile", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
