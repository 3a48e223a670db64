package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message, "error": bindingErrorDetail(err)})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

func internalError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": message, "error": err.Error()})
}

// bindingErrorDetail flattens validator field errors into one readable
// string; other binding failures (bad JSON, type mismatch) pass through.
func bindingErrorDetail(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		parts := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			parts = append(parts, fmt.Sprintf("field %q failed on the %q rule", fe.Field(), fe.Tag()))
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}
