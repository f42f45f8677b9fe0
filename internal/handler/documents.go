package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dzhusipov/fleet-core/internal/apierror"
	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/service"
)

// maxUploadBytes caps document uploads at 20 MiB.
const maxUploadBytes = 20 << 20

type DocumentsHandler struct{ svc *service.DocumentService }

func NewDocumentsHandler(svc *service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{svc: svc}
}

// Upload accepts a multipart form with a "file" part plus the metadata fields.
func (h *DocumentsHandler) Upload(c *gin.Context) {
	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Missing file part"))
		return
	}
	if fh.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("File exceeds the 20 MiB limit"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := h.svc.Upload(c.Request.Context(), req, fh.Filename, contentType, fh.Size, f, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DocumentsHandler) List(c *gin.Context) {
	var filter dto.DocumentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Download returns a time-limited presigned URL instead of streaming the
// object through the API.
func (h *DocumentsHandler) Download(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.DownloadLink(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
