// Package controllers holds the gin handlers. Each handler binds its
// request model, resolves the per-request session and hands off to a
// service; domain outcomes travel back inside the envelope.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gainsystem/pkg/reqctx"
	"gainsystem/pkg/utils"
)

// session resolves the request session or writes a transport failure.
func session(c *gin.Context) (*reqctx.Session, bool) {
	sess, ok := reqctx.FromGin(c)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, "request session is missing")
		return nil, false
	}
	return sess, true
}

// authedSession additionally requires a verified subject. Identity-gated
// handlers reject without one; everything before them runs unauthenticated.
func authedSession(c *gin.Context) (*reqctx.Session, bool) {
	sess, ok := session(c)
	if !ok {
		return nil, false
	}
	if !sess.Authenticated() {
		utils.HandleServiceError(c, utils.ErrInvalidToken)
		return nil, false
	}
	return sess, true
}

func bindJSON[T any](c *gin.Context) (*T, bool) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &req, true
}
