package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arfurnish/internal/domain/entity"
	"arfurnish/pkg/errors"
)

func setupProductUseCase(t *testing.T) (*ProductUseCase, *fakeProductRepo, *fakeUserRepo) {
	t.Helper()

	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	categoryRepo.seed("sofas", "tables")
	userRepo := newFakeUserRepo()

	userRepo.users["company-1"] = &entity.User{ID: "company-1", Email: "co@example.com", Role: entity.RoleCompany}
	userRepo.users["company-2"] = &entity.User{ID: "company-2", Email: "co2@example.com", Role: entity.RoleCompany}
	userRepo.users["client-1"] = &entity.User{ID: "client-1", Email: "client@example.com", Role: entity.RoleClient}
	userRepo.users["admin-1"] = &entity.User{ID: "admin-1", Email: "admin@example.com", Role: entity.RoleAdmin}

	return NewProductUseCase(productRepo, categoryRepo, userRepo), productRepo, userRepo
}

// validListing covers the full required-field set for a new product.
func validListing(name, category string, price float64) ProductInput {
	return ProductInput{
		Name:        name,
		Description: "Solid oak frame with a natural oil finish",
		Category:    category,
		Price:       price,
		Dimensions:  entity.Dimensions{Width: 120, Height: 45, Depth: 60, Unit: "cm"},
		ModelURL:    "https://storage.googleapis.com/arfurnish-media/models/sample.glb",
	}
}

func TestCreateProductStartsPending(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)

	product, err := uc.CreateProduct(context.Background(), "company-1", validListing("Oak Coffee Table", "tables", 249.99))
	require.NoError(t, err)

	assert.Equal(t, entity.ProductStatusPending, product.Status)
	assert.False(t, product.IsApproved)
	assert.Equal(t, "company-1", product.CompanyID)
}

func TestCreateProductRejectsClients(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)

	_, err := uc.CreateProduct(context.Background(), "client-1", validListing("Oak Coffee Table", "tables", 249.99))
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCreateProductUnknownCategory(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)

	_, err := uc.CreateProduct(context.Background(), "company-1", validListing("Oak Coffee Table", "rugs", 249.99))
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestCreateProductNegativePrice(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)

	_, err := uc.CreateProduct(context.Background(), "company-1", validListing("Oak Coffee Table", "tables", -1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestCreateProductRequiresFullListing(t *testing.T) {
	uc, productRepo, _ := setupProductUseCase(t)

	cases := []struct {
		name   string
		mutate func(input *ProductInput)
	}{
		{"missing description", func(input *ProductInput) { input.Description = "" }},
		{"zero dimensions", func(input *ProductInput) { input.Dimensions = entity.Dimensions{} }},
		{"missing unit", func(input *ProductInput) { input.Dimensions.Unit = "" }},
		{"missing model url", func(input *ProductInput) { input.ModelURL = "" }},
		{"relative model url", func(input *ProductInput) { input.ModelURL = "models/sample.glb" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validListing("Oak Coffee Table", "tables", 249.99)
			tc.mutate(&input)

			_, err := uc.CreateProduct(context.Background(), "company-1", input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
		})
	}

	assert.Empty(t, productRepo.products)
}

func approvedProduct(t *testing.T, uc *ProductUseCase, companyID string) *entity.Product {
	t.Helper()

	product, err := uc.CreateProduct(context.Background(), companyID, validListing("Linen Sofa", "sofas", 899))
	require.NoError(t, err)

	product, err = uc.Moderate(context.Background(), "admin-1", product.ID, "approve", "")
	require.NoError(t, err)
	require.True(t, product.IsApproved)

	return product
}

func TestOwnerEditResetsApproval(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)
	product := approvedProduct(t, uc, "company-1")

	updated, err := uc.UpdateProduct(context.Background(), product.ID, "company-1", entity.RoleCompany, ProductInput{
		Description: "Now with washable covers",
	})
	require.NoError(t, err)

	assert.False(t, updated.IsApproved)
	assert.Equal(t, entity.ProductStatusPending, updated.Status)
	assert.Nil(t, updated.ApprovedAt)
	assert.Empty(t, updated.ApprovedBy)
}

func TestAdminEditKeepsApproval(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)
	product := approvedProduct(t, uc, "company-1")

	updated, err := uc.UpdateProduct(context.Background(), product.ID, "admin-1", entity.RoleAdmin, ProductInput{
		Description: "Corrected dimensions",
	})
	require.NoError(t, err)

	assert.True(t, updated.IsApproved)
	assert.Equal(t, entity.ProductStatusApproved, updated.Status)
}

func TestUpdateProductKeepsCustomizableWhenUnspecified(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)

	input := validListing("Linen Sofa", "sofas", 899)
	input.Customizable = &entity.Customizable{Color: true, Material: true}
	product, err := uc.CreateProduct(context.Background(), "company-1", input)
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(context.Background(), product.ID, "company-1", entity.RoleCompany, ProductInput{
		Price: 42,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(42), updated.Price)
	assert.True(t, updated.Customizable.Color)
	assert.True(t, updated.Customizable.Material)
	assert.False(t, updated.Customizable.Size)
}

func TestUpdateProductAppliesCustomizableWhenProvided(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)

	input := validListing("Linen Sofa", "sofas", 899)
	input.Customizable = &entity.Customizable{Color: true}
	product, err := uc.CreateProduct(context.Background(), "company-1", input)
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(context.Background(), product.ID, "company-1", entity.RoleCompany, ProductInput{
		Customizable: &entity.Customizable{Material: true},
	})
	require.NoError(t, err)

	assert.False(t, updated.Customizable.Color)
	assert.True(t, updated.Customizable.Material)
}

func TestUpdateProductForeignCompanyForbidden(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)
	product := approvedProduct(t, uc, "company-1")

	_, err := uc.UpdateProduct(context.Background(), product.ID, "company-2", entity.RoleCompany, ProductInput{
		Description: "Not mine",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestModerateRejectRequiresReason(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)

	product, err := uc.CreateProduct(context.Background(), "company-1", validListing("Linen Sofa", "sofas", 899))
	require.NoError(t, err)

	_, err = uc.Moderate(context.Background(), "admin-1", product.ID, "reject", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	rejected, err := uc.Moderate(context.Background(), "admin-1", product.ID, "reject", "Thumbnail is blurry")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusRejected, rejected.Status)
	assert.False(t, rejected.IsApproved)
	assert.Equal(t, "Thumbnail is blurry", rejected.RejectionReason)
	assert.Equal(t, "admin-1", rejected.RejectedBy)
	assert.NotNil(t, rejected.RejectedAt)
}

func TestModerateApproveClearsRejectionStamp(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)

	product, err := uc.CreateProduct(context.Background(), "company-1", validListing("Linen Sofa", "sofas", 899))
	require.NoError(t, err)

	_, err = uc.Moderate(context.Background(), "admin-1", product.ID, "reject", "Bad model scale")
	require.NoError(t, err)

	approved, err := uc.Moderate(context.Background(), "admin-1", product.ID, "approve", "")
	require.NoError(t, err)

	assert.True(t, approved.IsApproved)
	assert.Equal(t, "admin-1", approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)
	assert.Nil(t, approved.RejectedAt)
	assert.Empty(t, approved.RejectionReason)
}

func TestModerateRepeatedDecisionConflicts(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)
	product := approvedProduct(t, uc, "company-1")

	_, err := uc.Moderate(context.Background(), "admin-1", product.ID, "approve", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))

	_, err = uc.Moderate(context.Background(), "admin-1", product.ID, "reject", "Seams are misaligned")
	require.NoError(t, err)

	_, err = uc.Moderate(context.Background(), "admin-1", product.ID, "reject", "Seams are misaligned")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestModerateUnknownAction(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)
	product := approvedProduct(t, uc, "company-1")

	_, err := uc.Moderate(context.Background(), "admin-1", product.ID, "archive", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestModerateDeleteRemovesProduct(t *testing.T) {
	uc, productRepo, _ := setupProductUseCase(t)
	product := approvedProduct(t, uc, "company-1")

	_, err := uc.Moderate(context.Background(), "admin-1", product.ID, "delete", "")
	require.NoError(t, err)

	_, err = productRepo.GetByID(context.Background(), product.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteProductOwnerAndAdminOnly(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)
	product := approvedProduct(t, uc, "company-1")

	err := uc.DeleteProduct(context.Background(), product.ID, "company-2", entity.RoleCompany)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = uc.DeleteProduct(context.Background(), product.ID, "company-1", entity.RoleCompany)
	assert.NoError(t, err)
}

func TestTrackEngagement(t *testing.T) {
	uc, productRepo, _ := setupProductUseCase(t)
	product := approvedProduct(t, uc, "company-1")

	require.NoError(t, uc.TrackEngagement(context.Background(), product.ID, entity.EngagementPlacements))
	require.NoError(t, uc.TrackEngagement(context.Background(), product.ID, entity.EngagementViews))
	require.NoError(t, uc.TrackEngagement(context.Background(), product.ID, entity.EngagementWishlistCount))

	stored, err := productRepo.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Placements)
	assert.Equal(t, 1, stored.Views)
	assert.Equal(t, 1, stored.WishlistCount)
}

func TestTrackEngagementUnknownType(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)
	product := approvedProduct(t, uc, "company-1")

	err := uc.TrackEngagement(context.Background(), product.ID, "purchases")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestListProductsApprovedOnly(t *testing.T) {
	uc, _, _ := setupProductUseCase(t)

	approvedProduct(t, uc, "company-1")
	_, err := uc.CreateProduct(context.Background(), "company-1", validListing("Unreviewed Stool", "tables", 49))
	require.NoError(t, err)

	products, total, err := uc.ListProducts(context.Background(), ListProductsInput{
		Limit:        20,
		ApprovedOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.True(t, products[0].IsApproved)
}
