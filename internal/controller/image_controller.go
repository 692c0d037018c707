package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Ocelots/internal/apperr"
	"github.com/lshigami/Ocelots/internal/dto"
	"github.com/lshigami/Ocelots/internal/service"
	"github.com/rs/zerolog/log"
)

type ImageController struct {
	imageService service.ImageService
}

func NewImageController(imageService service.ImageService) *ImageController {
	return &ImageController{imageService: imageService}
}

// UploadImage godoc
// @Summary Upload an image file
// @Description Multipart upload. The file extension must be png, jpg, jpeg, or gif; the type form field defaults to "etc".
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param type formData string false "Image type (main, sub, etc)"
// @Success 201 {object} dto.ImageUploadResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing file or disallowed extension"
// @Failure 500 {object} dto.ErrorResponse
// @Router /images/upload [post]
func (c *ImageController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No file part in the request"})
		return
	}
	if file.Filename == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No selected file"})
		return
	}

	resp, err := c.imageService.Upload(file, ctx.PostForm("type"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateImage godoc
// @Summary Register an image by URL
// @Tags Images
// @Accept json
// @Produce json
// @Param image_data body dto.ImageCreateDTO true "url and type"
// @Success 201 {object} dto.ImageCreateResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing url or type"
// @Failure 500 {object} dto.ErrorResponse
// @Router /images [post]
func (c *ImageController) CreateImage(ctx *gin.Context) {
	var req dto.ImageCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateImage: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.imageService.CreateFromURL(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListImages godoc
// @Summary List all images
// @Tags Images
// @Produce json
// @Success 200 {object} dto.ImageListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /images [get]
func (c *ImageController) ListImages(ctx *gin.Context) {
	resp, err := c.imageService.ListAll()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListImagesByType godoc
// @Summary List images of one type
// @Tags Images
// @Produce json
// @Param type path string true "Image type"
// @Success 200 {object} dto.ImageTypeListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /images/type/{type} [get]
func (c *ImageController) ListImagesByType(ctx *gin.Context) {
	resp, err := c.imageService.ListByType(ctx.Param("type"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetMainImage godoc
// @Summary Get the current main image URL
// @Description Newest image of type "main". Responds 404 with a null image when none is registered.
// @Tags Images
// @Produce json
// @Success 200 {object} dto.MainImageResponse
// @Failure 404 {object} dto.MainImageResponse
// @Router /images/main [get]
func (c *ImageController) GetMainImage(ctx *gin.Context) {
	resp, err := c.imageService.GetMain()
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			ctx.JSON(http.StatusNotFound, dto.MainImageResponse{Image: nil})
			return
		}
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteImage godoc
// @Summary Delete an image and its file
// @Description Removes the stored file first, then the row. A failed file removal leaves the row in place.
// @Tags Images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid image ID format"
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Failure 500 {object} dto.ErrorResponse "File delete error"
// @Router /images/{id} [delete]
func (c *ImageController) DeleteImage(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid image ID format"})
		return
	}

	resp, err := c.imageService.Delete(uint(id))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
