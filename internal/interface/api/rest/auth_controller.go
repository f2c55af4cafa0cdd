package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"userdocs-api/internal/application/ports"
	"userdocs-api/internal/application/services"
	userDB "userdocs-api/internal/infrastructure/db/postgres/user"
	"userdocs-api/internal/interface/api/rest/dto/auth"
	"userdocs-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
	}

	r.POST(RouteSignup, ac.SignupHandler)
	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

func (ac *AuthController) SignupHandler(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateSignup(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	hash, err := ac.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		ac.logger.Error("HashPassword() error", zap.Error(err))
		return
	}

	u, err := ac.userService.CreateUser(c.Request.Context(), req.Email, hash)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		ac.logger.Error("CreateUser() error", zap.Error(err))
		return
	}

	token, err := ac.authService.IssueToken(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		ac.logger.Error("IssueToken() error", zap.Error(err), zap.Uint64("user_id", uint64(u.ID)))
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// LoginHandler takes the OAuth2 password form: "username" carries the email.
// Unknown email and wrong password answer identically.
func (ac *AuthController) LoginHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if errs := validator.ValidateLogin(username, password); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.userService.FindByEmail(c.Request.Context(), username)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid credentials"},
		)
		return
	}

	token, err := ac.authService.GenerateToken(u, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Uint64("user_id", uint64(u.ID)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
