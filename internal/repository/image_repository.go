package repository

import (
	"github.com/lshigami/Ocelots/internal/model"
	"gorm.io/gorm"
)

type ImageRepository interface {
	Create(image *model.Image) error
	FindByID(id uint) (*model.Image, error)
	FindAll() ([]model.Image, error)
	FindByType(imageType string) ([]model.Image, error)
	FindLatestByType(imageType string) (*model.Image, error)
	Delete(id uint) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

func (r *imageRepository) FindByID(id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) FindAll() ([]model.Image, error) {
	var images []model.Image
	if err := r.db.Order("id ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) FindByType(imageType string) ([]model.Image, error) {
	var images []model.Image
	err := r.db.Where("type = ?", imageType).Order("id ASC").Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// FindLatestByType returns the most recently created image of the given
// type, newest id first.
func (r *imageRepository) FindLatestByType(imageType string) (*model.Image, error) {
	var image model.Image
	err := r.db.Where("type = ?", imageType).Order("id DESC").First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) Delete(id uint) error {
	return r.db.Delete(&model.Image{}, id).Error
}
