package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/coinvest-server/internal/model"
)

// handleError writes the public response for err. Unknown errors become a
// generic 500 and are attached to the context for the logging middleware.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
	case errors.Is(err, model.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
	case errors.Is(err, model.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, model.ErrCaptchaRejected):
		c.JSON(http.StatusBadRequest, gin.H{"message": "reCAPTCHA verification failed"})
	case errors.Is(err, model.ErrStorageDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Export storage is not configured"})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

func invalidInput(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "details": err.Error()})
}
