package httpapi

import (
	"context"
	"net/http"
	"time"

	"inkwell/internal/adapters/httpapi/middleware"
	postapp "inkwell/internal/core/post/service"
	cachePort "inkwell/internal/ports/cache"
	commentPort "inkwell/internal/ports/comment"
	groupPort "inkwell/internal/ports/group"
	postPort "inkwell/internal/ports/post"
	userPort "inkwell/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Inbound ports: what the controllers need from the use-case layer.

type UserUseCase interface {
	Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	Register(ctx context.Context, firstName, lastName, username, password string) (*userPort.UserDTO, error)
	GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error)
	GetByID(ctx context.Context, id string) (*userPort.UserDTO, error)
}

type GroupUseCase interface {
	GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error)
	List(ctx context.Context) ([]*groupPort.GroupDTO, error)
}

type PostUseCase interface {
	Create(ctx context.Context, authorID string, in postapp.Input) (*postPort.PostDTO, error)
	Update(ctx context.Context, requesterID, postID string, in postapp.Input) (*postPort.PostDTO, error)
	Delete(ctx context.Context, requesterID, postID string) error
	Get(ctx context.Context, postID string) (*postPort.PostDTO, int64, error)
	List(ctx context.Context, f postPort.Filter, page int) (*postapp.Listing, error)
}

type CommentUseCase interface {
	Add(ctx context.Context, requesterID, postID, text string) (*commentPort.CommentDTO, error)
	ListByPost(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error)
}

type FollowerUseCase interface {
	Follow(ctx context.Context, requesterID, authorUsername string) error
	Unfollow(ctx context.Context, requesterID, authorUsername string) error
	IsFollowing(ctx context.Context, requesterID, authorID string) (bool, error)
}

// SetupRoutes wires controllers to the route table. Use-cases and the page
// cache are injected from main.
func SetupRoutes(
	userUC UserUseCase,
	groupUC GroupUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	followerUC FollowerUseCase,
	pageCache cachePort.PageCache,
	cacheTTL time.Duration,
	jwtKey []byte,
	mediaDir string,
) *gin.Engine {
	r := gin.Default()

	uc := NewUserController(userUC)
	pc := NewPostController(postUC, groupUC, userUC, followerUC, commentUC, pageCache, cacheTTL)
	cc := NewCommentController(commentUC)
	fc := NewFollowerController(followerUC, postUC)

	required := middleware.AuthRequired(jwtKey)
	optional := middleware.AuthOptional(jwtKey)

	// Public pages
	r.GET("/", pc.Home)
	r.GET("/group/:slug/", pc.GroupList)
	r.GET("/profile/:username/", optional, pc.Profile)
	r.GET("/posts/:id/", pc.Detail)

	// Authoring
	r.GET("/create/", required, pc.CreateForm)
	r.POST("/create/", required, pc.Create)
	r.GET("/posts/:id/edit/", required, pc.EditForm)
	r.POST("/posts/:id/edit/", required, pc.Edit)
	r.POST("/posts/:id/delete/", required, pc.Delete)

	// Comments: GET is registered so the post-login return target works even
	// when the browser replays the redirect as a GET.
	r.GET("/posts/:id/comment/", required, cc.Add)
	r.POST("/posts/:id/comment/", required, cc.Add)

	// Follow graph
	r.GET("/follow/", required, fc.FollowIndex)
	r.GET("/profile/:username/follow/", required, fc.Follow)
	r.GET("/profile/:username/unfollow/", required, fc.Unfollow)

	// Identity
	r.POST("/auth/signup/", uc.Signup)
	r.POST("/auth/login/", uc.Login)

	// Uploaded post images
	if mediaDir != "" {
		r.Static("/media", mediaDir)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	return r
}
