package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
	"arfurnish/pkg/logger"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

type ProductInput struct {
	Name         string
	Description  string
	Category     string
	Price        float64
	Dimensions   entity.Dimensions
	ModelURL     string
	ThumbnailURL string
	Tags         []string
	Customizable *entity.Customizable
}

type ListProductsInput struct {
	Category    string
	CompanyID   string
	Tags        []string
	MinPrice    float64
	MaxPrice    float64
	CustomColor bool
	SortBy      string
	SortOrder   string
	Limit       int
	Offset      int
	// ApprovedOnly restricts the listing to purchasable products; admin
	// surfaces pass false to see the moderation queue.
	ApprovedOnly bool
}

// validateNewProduct enforces the full required-field set for a listing:
// name, description, category, non-negative price, positive dimensions with
// a unit, and a well-formed model URL.
func validateNewProduct(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.BadRequest("Name is required", nil)
	}
	if strings.TrimSpace(input.Description) == "" {
		return errors.BadRequest("Description is required", nil)
	}
	if input.Price < 0 {
		return errors.BadRequest("Price must not be negative", nil)
	}
	d := input.Dimensions
	if d.Width <= 0 || d.Height <= 0 || d.Depth <= 0 || strings.TrimSpace(d.Unit) == "" {
		return errors.BadRequest("Dimensions with a unit are required", nil)
	}
	parsed, err := url.ParseRequestURI(input.ModelURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.BadRequest("A valid 3D model URL is required", err)
	}
	return nil
}

// CreateProduct inserts a new product in pending state. Every product
// starts unapproved regardless of who creates it.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, companyID string, input ProductInput) (*entity.Product, error) {
	if err := validateNewProduct(input); err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.GetBySlug(ctx, input.Category); err != nil {
		return nil, errors.BadRequest("Unknown category", err)
	}

	owner, err := uc.userRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !owner.Role.In(entity.RoleCompany, entity.RoleAdmin) {
		return nil, errors.Forbidden("Only company accounts can list products", nil)
	}

	now := time.Now()
	product := &entity.Product{
		CompanyID:    companyID,
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Price:        input.Price,
		Dimensions:   input.Dimensions,
		ModelURL:     input.ModelURL,
		ThumbnailURL: input.ThumbnailURL,
		Tags:         input.Tags,
		Status:       entity.ProductStatusPending,
		IsApproved:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Customizable != nil {
		product.Customizable = *input.Customizable
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct merges the provided fields. An edit by the owning company
// always resets the product to pending review; admin edits keep the
// current approval state.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, actorID string, actorRole entity.Role, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.CompanyID != actorID && actorRole != entity.RoleAdmin {
		return nil, errors.Forbidden("You don't have permission to update this product", nil)
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Category != "" {
		if _, err := uc.categoryRepo.GetBySlug(ctx, input.Category); err != nil {
			return nil, errors.BadRequest("Unknown category", err)
		}
		product.Category = input.Category
	}
	if input.Price > 0 {
		product.Price = input.Price
	} else if input.Price < 0 {
		return nil, errors.BadRequest("Price must not be negative", nil)
	}
	if input.Dimensions != (entity.Dimensions{}) {
		product.Dimensions = input.Dimensions
	}
	if input.ModelURL != "" {
		product.ModelURL = input.ModelURL
	}
	if input.ThumbnailURL != "" {
		product.ThumbnailURL = input.ThumbnailURL
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.Customizable != nil {
		product.Customizable = *input.Customizable
	}

	if actorRole != entity.RoleAdmin {
		product.IsApproved = false
		product.Status = entity.ProductStatusPending
		product.ApprovedAt = nil
		product.ApprovedBy = ""
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// View bump is best-effort and never blocks the read.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.productRepo.IncrementCounter(ctx, id, "views", 1); err != nil {
			logger.Warn("Failed to increment views for product %s: %v", id, err)
		}
	}()

	return product, nil
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, input ListProductsInput) ([]*entity.Product, int64, error) {
	filter := repository.ProductFilter{
		Category:    input.Category,
		CompanyID:   input.CompanyID,
		CustomColor: input.CustomColor,
		Tags:        input.Tags,
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
	}
	if input.ApprovedOnly {
		filter.Status = entity.ProductStatusApproved
	}

	return uc.productRepo.List(ctx, filter, input.SortBy, input.SortOrder, input.Limit, input.Offset)
}

func (uc *ProductUseCase) ListByCompanyID(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.ListByCompanyID(ctx, companyID, limit, offset)
}

func (uc *ProductUseCase) ListPending(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	filter := repository.ProductFilter{Status: entity.ProductStatusPending}
	return uc.productRepo.List(ctx, filter, "createdAt", "asc", limit, offset)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id, actorID string, actorRole entity.Role) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if product.CompanyID != actorID && actorRole != entity.RoleAdmin {
		return errors.Forbidden("You don't have permission to delete this product", nil)
	}

	return uc.productRepo.Delete(ctx, id)
}

// Moderate applies an admin approval decision. Approve and reject must
// change state; re-applying the current decision is a conflict. A reject
// must carry a reason; approve clears any previous rejection stamp and
// vice versa.
func (uc *ProductUseCase) Moderate(ctx context.Context, adminID, productID, action, reason string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	switch action {
	case "approve":
		if product.Status == entity.ProductStatusApproved {
			return nil, errors.Conflict("Product is already approved")
		}
		product.Status = entity.ProductStatusApproved
		product.IsApproved = true
		product.ApprovedAt = &now
		product.ApprovedBy = adminID
		product.RejectedAt = nil
		product.RejectedBy = ""
		product.RejectionReason = ""
	case "reject":
		if product.Status == entity.ProductStatusRejected {
			return nil, errors.Conflict("Product is already rejected")
		}
		if reason == "" {
			return nil, errors.BadRequest("Rejection reason is required", nil)
		}
		product.Status = entity.ProductStatusRejected
		product.IsApproved = false
		product.RejectedAt = &now
		product.RejectedBy = adminID
		product.RejectionReason = reason
		product.ApprovedAt = nil
		product.ApprovedBy = ""
	case "delete":
		if err := uc.productRepo.Delete(ctx, productID); err != nil {
			return nil, err
		}
		return product, nil
	default:
		return nil, errors.BadRequest("Action must be approve, reject or delete", nil)
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// TrackEngagement bumps exactly one denormalized counter on the product.
func (uc *ProductUseCase) TrackEngagement(ctx context.Context, productID, engagementType string) error {
	var field string
	switch engagementType {
	case entity.EngagementViews:
		field = "views"
	case entity.EngagementPlacements:
		field = "placements"
	case entity.EngagementWishlistCount:
		field = "wishlistCount"
	default:
		return errors.BadRequest("Invalid engagement type", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}

	return uc.productRepo.IncrementCounter(ctx, productID, field, 1)
}
