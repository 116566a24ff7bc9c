package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthmate/internal/auth"
	"healthmate/internal/models"
)

// render pops any pending flash message into the template data before
// rendering.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if flash, ok := takeFlash(c); ok {
		data["flash"] = flash
	}
	c.HTML(status, name, data)
}

func redirectWithFlash(c *gin.Context, location, category, message string) {
	setFlash(c, category, message)
	c.Redirect(http.StatusFound, location)
}

// validationMessage turns a binding failure into a user-facing notice naming
// the offending form fields.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			field := lowerCamel(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("%s is required", field))
			default:
				details = append(details, fmt.Sprintf("%s is invalid", field))
			}
		}
		return strings.Join(details, ", ")
	}
	return "Invalid form submission."
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// currentUser loads the account behind the identity the session middleware
// injected. A nil return just means the templates omit the greeting.
func currentUser(c *gin.Context, svc *auth.Service) *models.User {
	value, ok := c.Get("userId")
	if !ok {
		return nil
	}
	userID, ok := value.(primitive.ObjectID)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := svc.User(ctx, userID)
	if err != nil {
		log.Println("[AUTH] [ERROR] current user lookup failed:", err)
		return nil
	}
	return user
}
