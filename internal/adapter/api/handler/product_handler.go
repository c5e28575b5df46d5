package handler

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/usecase"
	"arfurnish/pkg/errors"
	"arfurnish/pkg/response"
	"arfurnish/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	uploader       usecase.FileUploader
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, uploader usecase.FileUploader) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		uploader:       uploader,
	}
}

// productRequest is shared by create and update; the validate tags are the
// create guard and are only evaluated there. Updates merge whatever fields
// are present.
type productRequest struct {
	Name        string  `form:"name" json:"name" validate:"required,min=2"`
	Description string  `form:"description" json:"description" validate:"required"`
	Category    string  `form:"category" json:"category" validate:"required"`
	Price       float64 `form:"price" json:"price" validate:"gte=0"`

	Width  float64 `form:"width" json:"width" validate:"gt=0"`
	Height float64 `form:"height" json:"height" validate:"gt=0"`
	Depth  float64 `form:"depth" json:"depth" validate:"gt=0"`
	Unit   string  `form:"unit" json:"unit" validate:"required"`

	Tags string `form:"tags" json:"tags"`

	CustomColor    *bool `form:"custom_color" json:"custom_color"`
	CustomMaterial *bool `form:"custom_material" json:"custom_material"`
	CustomSize     *bool `form:"custom_size" json:"custom_size"`
}

func (r *productRequest) toInput() usecase.ProductInput {
	var tags []string
	if r.Tags != "" {
		for _, tag := range strings.Split(r.Tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	// Customizable is only carried when at least one flag was sent, so a
	// partial update leaves the stored flags alone.
	var customizable *entity.Customizable
	if r.CustomColor != nil || r.CustomMaterial != nil || r.CustomSize != nil {
		customizable = &entity.Customizable{}
		if r.CustomColor != nil {
			customizable.Color = *r.CustomColor
		}
		if r.CustomMaterial != nil {
			customizable.Material = *r.CustomMaterial
		}
		if r.CustomSize != nil {
			customizable.Size = *r.CustomSize
		}
	}

	return usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Dimensions: entity.Dimensions{
			Width:  r.Width,
			Height: r.Height,
			Depth:  r.Depth,
			Unit:   r.Unit,
		},
		Tags:         tags,
		Customizable: customizable,
	}
}

var (
	thumbnailTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
	}
	modelTypes = map[string]bool{
		"model/gltf-binary":  true,
		"model/vnd.usdz+zip": true,
	}
)

// uploadFormFile stores a multipart file and returns its public URL. A
// missing file is not an error; the caller decides whether it is required.
func (h *ProductHandler) uploadFormFile(c echo.Context, field, folder string, allowed map[string]bool) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowed[contentType] {
		return "", errors.BadRequest("Unsupported "+field+" content type: "+contentType, nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.BadRequest("Failed to read uploaded file", err)
	}
	defer func(src multipart.File) { _ = src.Close() }(src)

	url, err := h.uploader.UploadFile(c.Request().Context(), src, contentType, folder)
	if err != nil {
		return "", err
	}

	return url, nil
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := req.toInput()

	thumbnailURL, err := h.uploadFormFile(c, "thumbnail", "thumbnails", thumbnailTypes)
	if err != nil {
		return response.Error(c, err)
	}
	input.ThumbnailURL = thumbnailURL

	modelURL, err := h.uploadFormFile(c, "model", "models", modelTypes)
	if err != nil {
		return response.Error(c, err)
	}
	if modelURL == "" {
		return response.Error(c, errors.BadRequest("A 3D model file is required", nil))
	}
	input.ModelURL = modelURL

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), currentUID(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	input := req.toInput()

	thumbnailURL, err := h.uploadFormFile(c, "thumbnail", "thumbnails", thumbnailTypes)
	if err != nil {
		return response.Error(c, err)
	}
	input.ThumbnailURL = thumbnailURL

	modelURL, err := h.uploadFormFile(c, "model", "models", modelTypes)
	if err != nil {
		return response.Error(c, err)
	}
	input.ModelURL = modelURL

	product, err := h.productUseCase.UpdateProduct(
		c.Request().Context(),
		c.Param("productId"),
		currentUID(c),
		currentRole(c),
		input,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProductByID(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	minPrice, _ := strconv.ParseFloat(c.QueryParam("minPrice"), 64)
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("maxPrice"), 64)
	customColor, _ := strconv.ParseBool(c.QueryParam("customizable"))

	var tags []string
	if raw := c.QueryParam("tags"); raw != "" {
		tags = strings.Split(raw, ",")
	}

	products, total, err := h.productUseCase.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Category:     c.QueryParam("category"),
		CompanyID:    c.QueryParam("company"),
		Tags:         tags,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		CustomColor:  customColor,
		SortBy:       c.QueryParam("sortBy"),
		SortOrder:    c.QueryParam("sortOrder"),
		Limit:        params.Limit,
		Offset:       params.Offset,
		ApprovedOnly: true,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, params.Limit, params.Offset)
}

// ListMyProducts returns the authenticated company's own catalog,
// including pending and rejected entries.
func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListByCompanyID(c.Request().Context(), currentUID(c), params.Limit, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, params.Limit, params.Offset)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("productId"), currentUID(c), currentRole(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Product deleted successfully")
}

func (h *ProductHandler) TrackEngagement(c echo.Context) error {
	var req struct {
		Type string `json:"type" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.productUseCase.TrackEngagement(c.Request().Context(), c.Param("productId"), req.Type)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Engagement recorded")
}
