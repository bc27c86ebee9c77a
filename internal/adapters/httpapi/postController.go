package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"inkwell/internal/adapters/httpapi/middleware"
	"inkwell/internal/config"
	postapp "inkwell/internal/core/post/service"
	cachePort "inkwell/internal/ports/cache"
	postPort "inkwell/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostController struct {
	pc       PostUseCase
	gc       GroupUseCase
	uc       UserUseCase
	fc       FollowerUseCase
	cc       CommentUseCase
	cache    cachePort.PageCache
	cacheTTL time.Duration
}

func NewPostController(pc PostUseCase, gc GroupUseCase, uc UserUseCase, fc FollowerUseCase, cc CommentUseCase, cache cachePort.PageCache, cacheTTL time.Duration) *PostController {
	return &PostController{pc: pc, gc: gc, uc: uc, fc: fc, cc: cc, cache: cache, cacheTTL: cacheTTL}
}

// pageParam reads ?page= with the same forgiveness as the listing service:
// anything that is not a number becomes page 1, out-of-range values clamp
// later in the pager.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// Home serves the cached global listing. The rendering is cached per page
// for a short TTL, so a brand-new post may not show up until the entry
// expires or the cache is cleared.
func (ctl *PostController) Home(c *gin.Context) {
	page := pageParam(c)
	key := fmt.Sprintf("index:page:%d", page)

	if cached, ok, err := ctl.cache.Get(c.Request.Context(), key); err == nil && ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	listing, err := ctl.pc.List(c.Request.Context(), postPort.Filter{}, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load posts"})
		return
	}

	body, err := json.Marshal(listing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render posts"})
		return
	}

	if err := ctl.cache.Set(c.Request.Context(), key, string(body), ctl.cacheTTL); err != nil {
		config.Logger.Warn("could not cache home listing", zap.Error(err))
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GroupList serves one group's slice of the post collection.
func (ctl *PostController) GroupList(c *gin.Context) {
	g, err := ctl.gc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}

	listing, err := ctl.pc.List(c.Request.Context(), postPort.Filter{GroupID: g.ID}, pageParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group": g,
		"posts": listing.Posts,
		"page":  listing.Page,
	})
}

// Profile serves an author's listing plus the viewer's follow status.
func (ctl *PostController) Profile(c *gin.Context) {
	author, err := ctl.uc.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	listing, err := ctl.pc.List(c.Request.Context(), postPort.Filter{AuthorID: author.ID}, pageParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load posts"})
		return
	}

	following, err := ctl.fc.IsFollowing(c.Request.Context(), c.GetString(middleware.UserIDKey), author.ID)
	if err != nil {
		following = false
	}

	c.JSON(http.StatusOK, gin.H{
		"author":    author,
		"count":     listing.Page.Total,
		"following": following,
		"posts":     listing.Posts,
		"page":      listing.Page,
	})
}

// Detail serves one post with its comments in creation order.
func (ctl *PostController) Detail(c *gin.Context) {
	postID := c.Param("id")

	post, authorCount, err := ctl.pc.Get(c.Request.Context(), postID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	comments, err := ctl.cc.ListByPost(c.Request.Context(), postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"count":    authorCount,
		"comments": comments,
	})
}

// CreateForm returns the data a client needs to render the post form.
func (ctl *PostController) CreateForm(c *gin.Context) {
	groups, err := ctl.gc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups, "is_edit": false})
}

// Create persists a new post owned by the requester and redirects to their
// profile, mirroring the classic publish flow.
func (ctl *PostController) Create(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	in, ok := ctl.bindInput(c)
	if !ok {
		return
	}

	if _, err := ctl.pc.Create(c.Request.Context(), userID, in); err != nil {
		ctl.renderPostError(c, err)
		return
	}

	requester, err := ctl.uc.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+requester.Username+"/")
}

// EditForm returns the current field values, author-only. A non-author is
// silently sent back to the post detail.
func (ctl *PostController) EditForm(c *gin.Context) {
	postID := c.Param("id")

	post, _, err := ctl.pc.Get(c.Request.Context(), postID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	if post.Author == nil || post.Author.ID != c.GetString(middleware.UserIDKey) {
		c.Redirect(http.StatusFound, "/posts/"+postID+"/")
		return
	}

	groups, err := ctl.gc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post, "groups": groups, "is_edit": true})
}

// Edit updates a post in place. The non-author path never mutates anything.
func (ctl *PostController) Edit(c *gin.Context) {
	postID := c.Param("id")

	in, ok := ctl.bindInput(c)
	if !ok {
		return
	}

	if _, err := ctl.pc.Update(c.Request.Context(), c.GetString(middleware.UserIDKey), postID, in); err != nil {
		if errors.Is(err, postapp.ErrForbidden) {
			c.Redirect(http.StatusFound, "/posts/"+postID+"/")
			return
		}
		if errors.Is(err, postapp.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		ctl.renderPostError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postID+"/")
}

// Delete removes the requester's own post (comments go with it).
func (ctl *PostController) Delete(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString(middleware.UserIDKey)

	if err := ctl.pc.Delete(c.Request.Context(), userID, postID); err != nil {
		if errors.Is(err, postapp.ErrForbidden) {
			c.Redirect(http.StatusFound, "/posts/"+postID+"/")
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	requester, err := ctl.uc.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+requester.Username+"/")
}

// bindInput reads the multipart/form post fields shared by create and edit.
func (ctl *PostController) bindInput(c *gin.Context) (postapp.Input, bool) {
	in := postapp.Input{
		Text:    c.PostForm("text"),
		GroupID: c.PostForm("group"),
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "could not read upload"}})
			return in, false
		}
		defer f.Close()
		in.Image = f
		in.ImageName = file.Filename

		// The upload has to be consumed before the handler returns, so the
		// service call happens while the file is still open.
	}
	return in, true
}

func (ctl *PostController) renderPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, postapp.ErrTextRequired):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"text": "This field is required."}})
	case errors.Is(err, postapp.ErrGroupNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"group": "Select a valid choice."}})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save post"})
	}
}
