package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthmate/internal/advice"
	"healthmate/internal/auth"
)

// AnalyzeSymptoms classifies the submitted description and renders the
// advisory inline. A blank submission renders the form again without a
// result; a classifier failure degrades to a notice instead of an error
// page.
func AnalyzeSymptoms(authSvc *auth.Service, adviceSvc *advice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := gin.H{}
		if user := currentUser(c, authSvc); user != nil {
			data["user"] = user
		}

		result, err := adviceSvc.Analyze(c.Request.Context(), c.PostForm("symptoms"))
		switch {
		case err == nil:
			data["result"] = result
		case errors.Is(err, advice.ErrEmptyInput):
			// nothing to analyze, nothing to show
		case errors.Is(err, advice.ErrUnavailable):
			data["notice"] = "Symptom analysis is unavailable right now. Please try again later."
		}

		render(c, http.StatusOK, "symptoms.html", data)
	}
}
