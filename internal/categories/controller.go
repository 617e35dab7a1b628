package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

type Controller struct {
	repo *Repository
}

func NewController(repo *Repository) *Controller {
	return &Controller{repo: repo}
}

type createCategoryDTO struct {
	Name string `json:"name" binding:"required"`
}

type updateCategoryDTO struct {
	Name *string `json:"name"`
}

func (ct *Controller) List(c *gin.Context) {
	cats, err := ct.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (ct *Controller) Get(c *gin.Context) {
	cat, err := ct.repo.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (ct *Controller) Create(c *gin.Context) {
	var body createCategoryDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cat, err := ct.repo.Create(body.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (ct *Controller) Update(c *gin.Context) {
	var body updateCategoryDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cat, err := ct.repo.Update(c.Param("id"), func(cat *Category) {
		if body.Name != nil {
			cat.Name = *body.Name
			cat.Slug = slug.Make(*body.Name)
		}
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (ct *Controller) Delete(c *gin.Context) {
	cat, err := ct.repo.Delete(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}
