package httpapi

import (
	"errors"
	"net/http"

	"inkwell/internal/adapters/httpapi/middleware"
	followerapp "inkwell/internal/core/follower/service"
	postPort "inkwell/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type FollowerController struct {
	fc FollowerUseCase
	pc PostUseCase
}

func NewFollowerController(fc FollowerUseCase, pc PostUseCase) *FollowerController {
	return &FollowerController{fc: fc, pc: pc}
}

// FollowIndex serves the requester's following feed: posts authored by
// anyone they follow, newest first.
func (ctl *FollowerController) FollowIndex(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	page, err := ctl.pc.List(c.Request.Context(), postPort.Filter{FollowedBy: userID}, pageParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"follow": true,
		"posts":  page.Posts,
		"page":   page.Page,
	})
}

// Follow creates the follow edge and returns to the author's profile.
// Following yourself or someone you already follow are both quiet no-ops.
func (ctl *FollowerController) Follow(c *gin.Context) {
	username := c.Param("username")

	if err := ctl.fc.Follow(c.Request.Context(), c.GetString(middleware.UserIDKey), username); err != nil {
		if errors.Is(err, followerapp.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not follow user"})
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}

// Unfollow deletes the follow edge if present and returns to the profile.
func (ctl *FollowerController) Unfollow(c *gin.Context) {
	username := c.Param("username")

	if err := ctl.fc.Unfollow(c.Request.Context(), c.GetString(middleware.UserIDKey), username); err != nil {
		if errors.Is(err, followerapp.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not unfollow user"})
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}
