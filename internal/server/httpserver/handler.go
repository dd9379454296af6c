package httpserver

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/lockerrelay/internal/common"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	LockerID string `json:"lockerId"`
}

type clearNotificationsRequest struct {
	LockerID string `json:"lockerId"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// bindJSON decodes the request body into dst. An empty body leaves dst at its
// zero value; a malformed one is answered with 400.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request payload"})
		return false
	}
	return true
}

func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, loginResponse{
			Message:  "Login successful",
			Username: result.Username,
			LockerID: result.LockerID,
		})
	case errors.Is(err, common.ErrorNoLocker):
		c.JSON(http.StatusForbidden, messageResponse{Message: "No locker assigned to this user."})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid credentials"})
	default:
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}
}

func (s *HTTPServer) clearNotifications(c *gin.Context) {
	var req clearNotificationsRequest
	if !bindJSON(c, &req) {
		return
	}

	err := s.notifications.Clear(c.Request.Context(), req.LockerID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, messageResponse{Message: "Notifications cleared successfully."})
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Locker ID is required."})
	default:
		// the store's message is passed through to the caller as-is
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Failed to clear notifications.",
			Details: err.Error(),
		})
	}
}
