package httpapi

import (
	"errors"
	"net/http"

	userapp "inkwell/internal/core/user/service"

	"github.com/gin-gonic/gin"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController { return &UserController{uc: uc} }

// Login verifies credentials, sets the session cookie, and honors the
// ?next= return target an auth redirect put there.
func (ctl *UserController) Login(c *gin.Context) {
	var req struct {
		Username string `form:"username" json:"username" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"username": "This field is required.", "password": "This field is required."}})
		return
	}

	res, err := ctl.uc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.SetCookie("session", res.Token, 24*60*60, "/", "", false, true)

	if next := c.Query("next"); next != "" {
		c.Redirect(http.StatusFound, next)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) Signup(c *gin.Context) {
	var req struct {
		FirstName string `form:"first_name" json:"first_name"`
		LastName  string `form:"last_name" json:"last_name"`
		Username  string `form:"username" json:"username" binding:"required"`
		Password  string `form:"password" json:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"username": "This field is required.", "password": "This field is required."}})
		return
	}

	u, err := ctl.uc.Register(c.Request.Context(), req.FirstName, req.LastName, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"username": "A user with that username already exists."}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register"})
		return
	}
	c.JSON(http.StatusCreated, u)
}
