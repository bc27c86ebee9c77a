package httpapi

import (
	"errors"
	"net/http"

	"inkwell/internal/adapters/httpapi/middleware"
	commentapp "inkwell/internal/core/comment/service"

	"github.com/gin-gonic/gin"
)

type CommentController struct{ cc CommentUseCase }

func NewCommentController(cc CommentUseCase) *CommentController {
	return &CommentController{cc: cc}
}

// Add attaches a comment to the post and sends the requester back to the
// detail page. A GET lands here too (the login redirect preserves the
// method-agnostic path), in which case there is nothing to save.
func (ctl *CommentController) Add(c *gin.Context) {
	postID := c.Param("id")

	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusFound, "/posts/"+postID+"/")
		return
	}

	text := c.PostForm("text")
	if _, err := ctl.cc.Add(c.Request.Context(), c.GetString(middleware.UserIDKey), postID, text); err != nil {
		if errors.Is(err, commentapp.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		if errors.Is(err, commentapp.ErrTextRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"text": "This field is required."}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save comment"})
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+postID+"/")
}
