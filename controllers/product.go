package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"docushop/errs"
	"docushop/services"
	"docushop/utils"
)

const maxUploadMemory = 10 << 20 // 10MB

// ProductController handles catalog requests.
type ProductController struct {
	log     zerolog.Logger
	service *services.CatalogService
}

func NewProductController(log zerolog.Logger, service *services.CatalogService) *ProductController {
	return &ProductController{log: log, service: service}
}

// GetProducts handles GET /products with an optional ?category= filter.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	products, err := pc.service.List(ctx, r.URL.Query().Get("category"))
	if err != nil {
		utils.RespondError(w, pc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, products)
}

// CreateProduct handles POST /products (admin only): a multipart form
// with name, description, price, category and an image file that is
// pushed to blob storage before the product is persisted.
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.RespondError(w, pc.log, errs.Validation("invalid multipart form"))
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		utils.RespondError(w, pc.log, errs.Validation("invalid price"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, pc.log, errs.Validation("product image is required"))
		return
	}
	defer file.Close()

	input := services.CreateProductInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    r.FormValue("category"),
		Image:       file,
		ImageType:   header.Header.Get("Content-Type"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	product, err := pc.service.Create(ctx, input)
	if err != nil {
		utils.RespondError(w, pc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Product created",
		"product": product,
	})
}

// DeleteProduct handles DELETE /products/{id} (admin only).
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := pc.service.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		utils.RespondError(w, pc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}
