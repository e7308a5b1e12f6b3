package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wazihas/boutique/app/models"
	"github.com/wazihas/boutique/app/repositories"
	"github.com/wazihas/boutique/pkg/logger"
	"github.com/wazihas/boutique/pkg/response"
	"github.com/wazihas/boutique/pkg/upload"
	"github.com/wazihas/boutique/pkg/validate"
)

// ProductStore is the slice of the product repository the controller consumes.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	All(ctx context.Context) ([]models.Product, error)
	Find(ctx context.Context, id string) (models.Product, error)
	Update(ctx context.Context, id string, upd repositories.ProductUpdate) (repositories.UpdateCounts, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// Ingestor is the upload ingestion stage. *upload.Ingestor satisfies it.
type Ingestor interface {
	Ingest(r *http.Request, fields ...string) (map[string]string, error)
}

// ProductController serves catalogue CRUD.
type ProductController struct {
	products ProductStore
	ingest   Ingestor
}

func NewProductController(products ProductStore, ingest Ingestor) *ProductController {
	return &ProductController{products: products, ingest: ingest}
}

type createProductInput struct {
	Title       string `json:"title" validate:"required"`
	Price       string `json:"price" validate:"required,numeric"`
	Description string `json:"description" validate:"required"`
	Size        string `json:"size" validate:"required,json"`
}

// Create handles POST /products (multipart). The image1/image2 file fields
// are routed to the blob store first; an absent field stores nothing and
// persists an empty URL.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	urls, err := c.ingest.Ingest(r, "image1", "image2")
	if errors.Is(err, upload.ErrStorage) {
		logger.WithCtx(r.Context()).Error("product image upload", "error", err)
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	body := createProductInput{
		Title:       r.FormValue("title"),
		Price:       r.FormValue("price"),
		Description: r.FormValue("description"),
		Size:        r.FormValue("size"),
	}
	if errs := validate.Struct(body); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	price, _ := strconv.ParseFloat(body.Price, 64)

	var size interface{}
	if err := json.Unmarshal([]byte(body.Size), &size); err != nil {
		response.ValidationError(w, map[string]string{"size": "The size field must be valid JSON."})
		return
	}

	product := models.Product{
		Title:       body.Title,
		Price:       price,
		Description: body.Description,
		Size:        size,
		Image1:      urls["image1"],
		Image2:      urls["image2"],
	}

	if err := c.products.Create(r.Context(), &product); err != nil {
		logger.WithCtx(r.Context()).Error("create product", "error", err)
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("product created", "id", product.ID.Hex(), "title", product.Title)
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  map[string]string{"insertedId": product.ID.Hex()},
	})
}

// List handles GET /products, newest first.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.All(r.Context())
	if err != nil {
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, products)
}

// Show handles GET /products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.Find(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, repositories.ErrInvalidID) {
		response.InvalidID(w)
		return
	}
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, product)
}

type updateProductInput struct {
	Title       string      `json:"title"`
	Price       json.Number `json:"price"`
	Description string      `json:"description"`
	Size        interface{} `json:"size"`
}

// Update handles PUT /products/{id}. Price tolerates both JSON numbers and
// numeric strings; size is stored as submitted.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var body updateProductInput

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var price float64
	if body.Price != "" {
		var err error
		price, err = body.Price.Float64()
		if err != nil {
			response.ValidationError(w, map[string]string{"price": "The price field must be a number."})
			return
		}
	}

	counts, err := c.products.Update(r.Context(), chi.URLParam(r, "id"), repositories.ProductUpdate{
		Title:       body.Title,
		Price:       price,
		Description: body.Description,
		Size:        body.Size,
	})
	if errors.Is(err, repositories.ErrInvalidID) {
		response.InvalidID(w)
		return
	}
	if err != nil {
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, counts)
}

// Delete handles DELETE /products/{id}.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.products.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, repositories.ErrInvalidID) {
		response.InvalidID(w)
		return
	}
	if err != nil {
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
