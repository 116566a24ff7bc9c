package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"healthmate/internal/advice"
	"healthmate/internal/auth"
	"healthmate/internal/classifier"
	"healthmate/internal/config"
	"healthmate/internal/database"
	"healthmate/internal/handlers"
	"healthmate/internal/middleware"
	"healthmate/internal/store"
)

func main() {
	config.Load()

	if config.AppEnv.SecretKey == "" {
		log.Fatal("SECRET_KEY is required")
	}

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Println("⚠️ user index warning:", err)
	}
	if err := database.EnsureSessionIndexes(db); err != nil {
		log.Println("⚠️ session index warning:", err)
	}

	users := store.NewUsers(db)
	sessions := auth.NewSessionManager(store.NewSessions(db), config.AppEnv.SecretKey, config.AppEnv.SessionTTL)
	authSvc := auth.NewService(users, sessions)

	var adviceSvc *advice.Service
	if config.AppEnv.HFToken != "" {
		adviceSvc = advice.NewService(classifier.New(config.AppEnv.HFToken, config.AppEnv.HFModel, config.AppEnv.ClassifierTimeout))
	} else {
		log.Println("[ADVICE] [WARN] HF_TOKEN not set, symptom analysis disabled")
		adviceSvc = advice.NewService(nil)
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	r.GET("/", handlers.IndexPage)
	r.GET("/register", handlers.RegisterPage)
	r.POST("/register", handlers.Register(authSvc))
	r.GET("/login", middleware.RedirectAuthenticated(sessions), handlers.LoginPage)
	r.POST("/login", handlers.Login(authSvc, config.AppEnv.SessionTTL))

	protected := r.Group("/")
	protected.Use(middleware.RequireSession(sessions))
	{
		protected.GET("/symptoms", handlers.SymptomsPage(authSvc))
		protected.POST("/symptoms", handlers.AnalyzeSymptoms(authSvc, adviceSvc))
		protected.GET("/logout", handlers.Logout(authSvc))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
