package posts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/ReactMentorship/travelblog-core/internal/comments"
)

type Controller struct {
	repo     *Repository
	comments *comments.Repository
	log      zerolog.Logger
}

func NewController(repo *Repository, commentsRepo *comments.Repository, log zerolog.Logger) *Controller {
	return &Controller{repo: repo, comments: commentsRepo, log: log}
}

type createPostDTO struct {
	Title       string `json:"title" binding:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type updatePostDTO struct {
	Title       *string `json:"title"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

type createCommentDTO struct {
	Author  string `json:"author" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (ct *Controller) List(c *gin.Context) {
	all, err := ct.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, all)
}

func (ct *Controller) Get(c *gin.Context) {
	p, err := ct.repo.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ct *Controller) Create(c *gin.Context) {
	var body createPostDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := ct.repo.Create(CreatePost{
		Title:       body.Title,
		Image:       body.Image,
		Description: body.Description,
		Category:    body.Category,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (ct *Controller) Update(c *gin.Context) {
	var body updatePostDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := ct.repo.Update(c.Param("id"), func(p *Post) {
		if body.Title != nil {
			p.Title = *body.Title
			p.Slug = slug.Make(*body.Title)
		}
		if body.Image != nil {
			p.Image = *body.Image
		}
		if body.Description != nil {
			p.Description = *body.Description
		}
		if body.Category != nil {
			p.Category = *body.Category
		}
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ct *Controller) Delete(c *gin.Context) {
	p, err := ct.repo.Delete(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ct *Controller) ListByCategory(c *gin.Context) {
	matches, err := ct.repo.FindByCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, matches)
}

// CreateComment stores a new comment and links its id into the post's comment
// list. The two writes hit different collection files and are not atomic: if
// linking fails the comment stays stored but unlinked.
func (ct *Controller) CreateComment(c *gin.Context) {
	var body createCommentDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	postID := c.Param("id")
	p, err := ct.repo.FindByID(postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	cm, err := ct.comments.Create(body.Author, body.Content, postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if _, err := ct.repo.AppendComment(postID, cm.ID); err != nil {
		ct.log.Error().Err(err).Str("post_id", postID).Str("comment_id", cm.ID).
			Msg("comment stored but not linked to post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cm)
}
