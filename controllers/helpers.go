package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/gifter/utils"
)

// parseID parses a positive integer path id.
func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// storeFailure logs err with the request context and answers 500.
func storeFailure(ctx *gin.Context, code int, message string, err error) {
	utils.Sugar.Errorw(message,
		"request_id", ctx.GetString(utils.RequestIDKey),
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"error", err,
	)
	utils.Error(ctx, http.StatusInternalServerError, code, message)
}

// created answers 201 with a Location header pointing at the new resource.
func created(ctx *gin.Context, id int, body interface{}) {
	location := strings.TrimSuffix(ctx.Request.URL.Path, "/") + "/" + strconv.Itoa(id)
	ctx.Header("Location", location)
	ctx.JSON(http.StatusCreated, body)
}
