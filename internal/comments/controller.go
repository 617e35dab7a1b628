package comments

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	repo *Repository
}

func NewController(repo *Repository) *Controller {
	return &Controller{repo: repo}
}

// ListForPost returns every comment belonging to the post id in the path.
func (ct *Controller) ListForPost(c *gin.Context) {
	cms, err := ct.repo.FindByPostID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cms)
}
