package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"healthmate/internal/auth"
	"healthmate/internal/store"
)

type registerForm struct {
	Name     string `form:"name" binding:"required"`
	Gender   string `form:"gender" binding:"required"`
	Province string `form:"province" binding:"required"`
	District string `form:"district" binding:"required"`
	Sector   string `form:"sector" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Phone    string `form:"phone" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Register handles the registration form. Every failure flashes a notice and
// returns to the form; success sends the new user to the login page.
func Register(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form registerForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithFlash(c, "/register", "danger", validationMessage(err))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err := svc.Register(ctx, auth.RegisterInput{
			Name:     form.Name,
			Gender:   form.Gender,
			Province: form.Province,
			District: form.District,
			Sector:   form.Sector,
			Email:    form.Email,
			Phone:    form.Phone,
			Password: form.Password,
		})
		switch {
		case err == nil:
			log.Println("[AUTH] [INFO] user registered:", form.Email)
			redirectWithFlash(c, "/login", "success", "Registration successful! You can now login.")
		case errors.Is(err, store.ErrDuplicateEmail):
			log.Println("[AUTH] [ERROR] register email exists:", form.Email)
			redirectWithFlash(c, "/register", "danger", "Email already registered. Please use a different email.")
		case errors.Is(err, store.ErrDuplicatePhone):
			log.Println("[AUTH] [ERROR] register phone exists:", form.Phone)
			redirectWithFlash(c, "/register", "danger", "Phone number already registered. Please use a different phone.")
		case errors.Is(err, auth.ErrMissingFields):
			redirectWithFlash(c, "/register", "danger", "All fields are required.")
		default:
			log.Println("[AUTH] [ERROR] register failed:", err)
			redirectWithFlash(c, "/register", "danger", "Something went wrong. Please try again.")
		}
	}
}

// Login verifies the credentials and, on success, sets the session cookie
// and forwards to the symptom form.
func Login(svc *auth.Service, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form loginForm
		if err := c.ShouldBind(&form); err != nil {
			redirectWithFlash(c, "/login", "danger", validationMessage(err))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		token, err := svc.Authenticate(ctx, form.Email, form.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				log.Println("[AUTH] [ERROR] login invalid credentials")
				redirectWithFlash(c, "/login", "danger", "Login failed. Check your email/password.")
				return
			}
			log.Println("[AUTH] [ERROR] login failed:", err)
			redirectWithFlash(c, "/login", "danger", "Something went wrong. Please try again.")
			return
		}

		c.SetCookie(auth.SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
		log.Println("[AUTH] [INFO] user login succeeded:", form.Email)
		redirectWithFlash(c, "/symptoms", "success", "Login successful!")
	}
}

// Logout revokes the presented session and clears the cookie. A request with
// no usable cookie still ends up logged out on the login page.
func Logout(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(auth.SessionCookie); err == nil && token != "" {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
			defer cancel()

			if err := svc.Logout(ctx, token); err != nil {
				log.Println("[AUTH] [ERROR] logout failed:", err)
			}
		}

		c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
		redirectWithFlash(c, "/login", "success", "You have been logged out.")
	}
}
