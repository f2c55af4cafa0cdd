package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"userdocs-api/internal/application/ports"
	"userdocs-api/internal/infrastructure/jwt"
	"userdocs-api/internal/interface/api/rest/dto/user"
	"userdocs-api/internal/interface/api/rest/middleware"
)

// avatars share the documents size cap
const maxAvatarSize = int64(10 << 20)

type UserController struct {
	userService ports.UserService
	blob        ports.BlobStore
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	blob ports.BlobStore,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		blob:        blob,
		logger:      logger,
	}

	authorized := middleware.AuthMiddleware(jwtService, userService)
	r.GET(RouteMe, authorized, uc.GetMeHandler)
	r.PUT(RouteMe, authorized, uc.UpdateMeHandler)

	return uc
}

func (uc *UserController) GetMeHandler(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

// UpdateMeHandler applies a partial profile update from a multipart form:
// an absent "name" field keeps the stored name, an absent "avatar" file keeps
// the stored avatar. A replaced avatar's old asset stays on disk.
func (uc *UserController) UpdateMeHandler(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var name *string
	if v, present := c.GetPostForm("name"); present {
		name = &v
	}

	var avatarURL *string
	if fh, err := c.FormFile("avatar"); err == nil {
		if fh.Size <= 0 || fh.Size > maxAvatarSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
			return
		}

		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid avatar file"})
			return
		}
		defer f.Close()

		storedName, err := uc.blob.Save(f, fh.Filename)
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to store avatar"},
			)
			uc.logger.Error("blob Save() error", zap.Error(err))
			return
		}
		url := uc.blob.PublicURL(storedName)
		avatarURL = &url
	}

	updated, err := uc.userService.UpdateProfile(c.Request.Context(), u.ID, name, avatarURL)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update profile"},
		)
		uc.logger.Error("UpdateProfile() error", zap.Error(err))
		return
	}

	if updated == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*updated))
}
