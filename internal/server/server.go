package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ReactMentorship/travelblog-core/internal/auth"
	"github.com/ReactMentorship/travelblog-core/internal/categories"
	"github.com/ReactMentorship/travelblog-core/internal/comments"
	"github.com/ReactMentorship/travelblog-core/internal/config"
	"github.com/ReactMentorship/travelblog-core/internal/posts"
	"github.com/ReactMentorship/travelblog-core/internal/users"
)

// New wires repositories, controllers and routes into a ready-to-run engine.
func New(cfg *config.Config, log zerolog.Logger) (*gin.Engine, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	usersRepo := users.NewRepository(cfg.DataDir)
	categoriesRepo := categories.NewRepository(cfg.DataDir)
	postsRepo := posts.NewRepository(cfg.DataDir)
	commentsRepo := comments.NewRepository(cfg.DataDir)

	authSvc := auth.NewService(usersRepo, cfg.AccessSecret, cfg.RefreshSecret, cfg.Production)
	categoriesCtl := categories.NewController(categoriesRepo)
	postsCtl := posts.NewController(postsRepo, commentsRepo, log)
	commentsCtl := comments.NewController(commentsRepo)

	r := gin.New()
	r.Use(accessLog(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error().Interface("panic", err).Str("path", c.Request.URL.Path).Msg("handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	ar := api.Group("/auth")
	ar.POST("/register", authSvc.RegisterHandler)
	ar.POST("/login", authSvc.LoginHandler)
	ar.POST("/refresh", authSvc.RefreshHandler)
	ar.POST("/logout", authSvc.LogoutHandler)
	ar.GET("/me", authSvc.RequireAuth(), authSvc.MeHandler)

	// Protected routes
	pr := api.Group("", authSvc.RequireAuth())

	pr.GET("/categories", categoriesCtl.List)
	pr.POST("/categories", categoriesCtl.Create)
	pr.GET("/categories/:id", categoriesCtl.Get)
	pr.PATCH("/categories/:id", categoriesCtl.Update)
	pr.DELETE("/categories/:id", categoriesCtl.Delete)

	pr.GET("/posts", postsCtl.List)
	pr.POST("/posts", postsCtl.Create)
	pr.GET("/posts/:id", postsCtl.Get)
	pr.PATCH("/posts/:id", postsCtl.Update)
	pr.DELETE("/posts/:id", postsCtl.Delete)
	pr.GET("/posts/category/:category", postsCtl.ListByCategory)
	pr.POST("/posts/:id/comments", postsCtl.CreateComment)

	pr.GET("/comments/:id", commentsCtl.ListForPost)

	return r, nil
}

func accessLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
