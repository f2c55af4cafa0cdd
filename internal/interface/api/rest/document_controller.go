package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"userdocs-api/internal/application/ports"
	"userdocs-api/internal/application/services"
	"userdocs-api/internal/infrastructure/jwt"
	"userdocs-api/internal/interface/api/rest/dto/document"
	"userdocs-api/internal/interface/api/rest/middleware"
	"userdocs-api/internal/interface/api/rest/validator"
)

// 10MB
const maxSize = int64(10 << 20)

type DocumentController struct {
	documentService ports.DocumentService
	logger          *zap.Logger
}

func NewDocumentController(
	r *gin.Engine,
	documentService ports.DocumentService,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *DocumentController {
	dc := &DocumentController{
		documentService: documentService,
		logger:          logger,
	}

	authorized := middleware.AuthMiddleware(jwtService, userService)
	r.GET(RouteDocuments, authorized, dc.GetDocumentsHandler)
	r.POST(RouteDocuments, authorized, dc.CreateDocumentHandler)
	r.DELETE(RouteDocument, authorized, dc.DeleteDocumentHandler)

	return dc
}

func (dc *DocumentController) GetDocumentsHandler(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	docs, err := dc.documentService.FindDocuments(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get documents"},
		)
		dc.logger.Error("FindDocuments() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, document.ToResponseDocuments(docs))
}

func (dc *DocumentController) CreateDocumentHandler(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	d, err := dc.documentService.CreateDocument(c.Request.Context(), u.ID, fh)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a document"},
		)
		dc.logger.Error("CreateDocument() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, document.ToResponseDocument(*d))
}

func (dc *DocumentController) DeleteDocumentHandler(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	id, err := validator.ParseDocID(c.Param("doc_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	err = dc.documentService.DeleteDocument(c.Request.Context(), u.ID, id)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete document"},
		)
		dc.logger.Error("DeleteDocument() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
