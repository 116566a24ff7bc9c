package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthmate/internal/auth"
)

func IndexPage(c *gin.Context) {
	render(c, http.StatusOK, "index.html", gin.H{})
}

func RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{})
}

func LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{})
}

// SymptomsPage renders the symptom form for the authenticated user.
func SymptomsPage(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := gin.H{}
		if user := currentUser(c, svc); user != nil {
			data["user"] = user
		}
		render(c, http.StatusOK, "symptoms.html", data)
	}
}
