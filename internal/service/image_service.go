package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Ocelots/config"
	"github.com/lshigami/Ocelots/internal/apperr"
	"github.com/lshigami/Ocelots/internal/dto"
	"github.com/lshigami/Ocelots/internal/model"
	"github.com/lshigami/Ocelots/internal/repository"
	"github.com/lshigami/Ocelots/internal/storage"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Upload extensions accepted for image files.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// DefaultImageType is applied when an upload omits the type form field.
const DefaultImageType = "etc"

type ImageService interface {
	Upload(file *multipart.FileHeader, imageType string) (*dto.ImageUploadResponseDTO, error)
	CreateFromURL(req dto.ImageCreateDTO) (*dto.ImageCreateResponseDTO, error)
	ListAll() (*dto.ImageListResponse, error)
	ListByType(imageType string) (*dto.ImageTypeListResponse, error)
	GetMain() (*dto.MainImageResponse, error)
	Delete(id uint) (*dto.MessageResponse, error)
}

type imageService struct {
	imageRepo repository.ImageRepository
	store     storage.FileStore
	baseURL   string
}

func NewImageService(imageRepo repository.ImageRepository, store storage.FileStore, cfg *config.Config) ImageService {
	return &imageService{
		imageRepo: imageRepo,
		store:     store,
		baseURL:   strings.TrimRight(cfg.Server.BaseURL, "/"),
	}
}

func validImageType(imageType string) bool {
	for _, t := range model.AllowedImageTypes {
		if t == imageType {
			return true
		}
	}
	return false
}

func (s *imageService) Upload(file *multipart.FileHeader, imageType string) (*dto.ImageUploadResponseDTO, error) {
	if imageType == "" {
		imageType = DefaultImageType
	}
	if !validImageType(imageType) {
		return nil, apperr.Validationf("Invalid image type: %s", imageType)
	}

	filename := storage.SanitizeFilename(file.Filename)
	if filename == "" || strings.HasPrefix(filename, ".") {
		return nil, apperr.Validationf("No selected file")
	}
	if !allowedExtensions[strings.ToLower(path.Ext(filename))] {
		return nil, apperr.Validationf("File type not allowed")
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("Upload: failed to open multipart file")
		return nil, apperr.Wrap(apperr.Internal, "Failed to read uploaded file", err)
	}
	defer src.Close()

	if err := s.store.Save(filename, src); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("Upload: failed to save file")
		return nil, apperr.Wrap(apperr.Internal, "Failed to save uploaded file", err)
	}

	image := model.Image{
		URL:  s.baseURL + "/static/uploads/" + filename,
		Type: imageType,
	}
	if err := s.imageRepo.Create(&image); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("Upload: failed to create image row")
		return nil, apperr.Wrap(apperr.Internal, "Failed to save image", err)
	}

	return &dto.ImageUploadResponseDTO{
		Message:  "File uploaded and saved successfully",
		ID:       image.ID,
		URL:      image.URL,
		Filename: filename,
		Type:     image.Type,
	}, nil
}

func (s *imageService) CreateFromURL(req dto.ImageCreateDTO) (*dto.ImageCreateResponseDTO, error) {
	image := model.Image{
		URL:  req.URL,
		Type: req.Type,
	}
	if err := s.imageRepo.Create(&image); err != nil {
		log.Error().Err(err).Str("url", req.URL).Msg("CreateFromURL: failed to create image row")
		return nil, apperr.Wrap(apperr.Internal, "Failed to create image", err)
	}
	return &dto.ImageCreateResponseDTO{
		Message: fmt.Sprintf("ID: %d Image Success Create", image.ID),
		ImageID: image.ID,
	}, nil
}

func (s *imageService) ListAll() (*dto.ImageListResponse, error) {
	images, err := s.imageRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListAll: repository error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve images", err)
	}

	resp := dto.ImageListResponse{Images: make([]dto.ImageDTO, 0, len(images))}
	for _, image := range images {
		var imageDTO dto.ImageDTO
		if err := copier.Copy(&imageDTO, &image); err != nil {
			log.Error().Err(err).Uint("imageID", image.ID).Msg("ListAll: failed to copy image to DTO")
			return nil, apperr.Wrap(apperr.Internal, "Failed to prepare images response", err)
		}
		resp.Images = append(resp.Images, imageDTO)
	}
	return &resp, nil
}

func (s *imageService) ListByType(imageType string) (*dto.ImageTypeListResponse, error) {
	images, err := s.imageRepo.FindByType(imageType)
	if err != nil {
		log.Error().Err(err).Str("type", imageType).Msg("ListByType: repository error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve images", err)
	}

	resp := dto.ImageTypeListResponse{Images: make([]dto.ImageSummaryDTO, 0, len(images))}
	for _, image := range images {
		resp.Images = append(resp.Images, dto.ImageSummaryDTO{ID: image.ID, URL: image.URL})
	}
	return &resp, nil
}

// GetMain returns the newest image tagged "main".
func (s *imageService) GetMain() (*dto.MainImageResponse, error) {
	image, err := s.imageRepo.FindLatestByType("main")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("No main image registered")
		}
		log.Error().Err(err).Msg("GetMain: repository error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve main image", err)
	}
	return &dto.MainImageResponse{Image: &image.URL}, nil
}

// Delete removes the image row and its underlying file. The file removal
// runs first; when it fails the row is left untouched. A file that was
// already gone does not block the row deletion.
func (s *imageService) Delete(id uint) (*dto.MessageResponse, error) {
	image, err := s.imageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Image not found")
		}
		log.Error().Err(err).Uint("imageID", id).Msg("Delete: repository error")
		return nil, apperr.Wrap(apperr.Internal, "Failed to retrieve image", err)
	}

	if filename := s.localFilename(image.URL); filename != "" {
		if err := s.store.Remove(filename); err != nil {
			log.Error().Err(err).Str("filename", filename).Msg("Delete: failed to remove file")
			return nil, apperr.Wrap(apperr.Internal, "File delete error", err)
		}
	}

	if err := s.imageRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("imageID", id).Msg("Delete: failed to delete image row")
		return nil, apperr.Wrap(apperr.Internal, "Failed to delete image", err)
	}

	return &dto.MessageResponse{
		Message: fmt.Sprintf("Image id %d and file deleted successfully", id),
	}, nil
}

// localFilename maps an image URL back to its file in the upload
// directory. Only URLs minted by Upload (base URL + the static uploads
// path, single segment) refer to local files; host-only URLs, foreign
// hosts, and nested paths have no file of ours to remove.
func (s *imageService) localFilename(rawURL string) string {
	prefix := s.baseURL + "/static/uploads/"
	if !strings.HasPrefix(rawURL, prefix) {
		return ""
	}
	name := strings.TrimPrefix(rawURL, prefix)
	if name == "" || strings.Contains(name, "/") {
		return ""
	}
	return name
}
