package services

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"docushop/errs"
	"docushop/models"
	"docushop/store"
)

// Uploader stores an image and returns its public URL. Implemented by
// utils.CloudinaryUploader.
type Uploader interface {
	Upload(ctx context.Context, content io.Reader) (string, error)
}

// CatalogService manages products.
type CatalogService struct {
	log      zerolog.Logger
	products store.ProductStore
	uploader Uploader
}

func NewCatalogService(log zerolog.Logger, products store.ProductStore, uploader Uploader) *CatalogService {
	return &CatalogService{
		log:      log.With().Str("component", "catalog").Logger(),
		products: products,
		uploader: uploader,
	}
}

// List returns the catalog, optionally filtered by category.
func (s *CatalogService) List(ctx context.Context, category string) ([]models.Product, error) {
	return s.products.FindAll(ctx, category)
}

// CreateProductInput is a decoded product-upload request. Image is the
// raw uploaded file and ImageType its reported content type.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       io.Reader
	ImageType   string
}

// Create uploads the image to blob storage and persists the product with
// the returned URL. Nothing is written when the upload fails.
func (s *CatalogService) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errs.Validation("product name is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, errs.Validation("product category is required")
	}
	if input.Price < 0 {
		return nil, errs.Validation("product price must not be negative")
	}
	if input.Image == nil {
		return nil, errs.Validation("product image is required")
	}
	if !strings.HasPrefix(input.ImageType, "image/") {
		return nil, errs.Validation("only image files are allowed")
	}

	url, err := s.uploader.Upload(ctx, input.Image)
	if err != nil {
		return nil, errs.Wrap(errs.CodeUpload, err, "uploading product image")
	}

	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Image:       url,
		Category:    strings.TrimSpace(input.Category),
		Available:   true,
	}

	product, err = s.products.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", product.ID.Hex()).Str("category", product.Category).Msg("product created")
	return product, nil
}

// Delete removes a product from the catalog. Orders that referenced it
// keep their snapshots; nothing cascades.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.Validation("invalid product id")
	}
	if err := s.products.Delete(ctx, productID); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
