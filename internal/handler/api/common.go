package api

import (
	"net/http"

	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/handler/middleware"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errNotAuthenticated = errs.New("no authenticated user on context")
	errInvalidID        = errs.New("malformed id parameter")
)

// pathID parses a uuid path parameter, answering 400 when it is malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidID, name), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "Authentication required", nil)
		return uuid.Nil, false
	}
	return userID, true
}

// actorOf describes the caller for authorization decisions. Anonymous callers get a zero Actor.
func actorOf(c *gin.Context) commands.Actor {
	var actor commands.Actor
	if userID, ok := middleware.GetUserID(c); ok {
		actor.UserID = &userID
	}
	if role, ok := middleware.GetUserRole(c); ok {
		actor.Role = role
	}
	return actor
}
