package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

// List applies category/company/color filters store-side and tag/price
// filters in memory after limit/offset, so the returned total counts the
// post-filtered page only. Known semantic quirk, kept deliberately.
func (r *firestoreProductRepository) List(ctx context.Context, filter repository.ProductFilter, sortBy, sortOrder string, limit, offset int) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").Query

	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}
	if filter.CompanyID != "" {
		query = query.Where("companyId", "==", filter.CompanyID)
	}
	if filter.CustomColor {
		query = query.Where("customizable.color", "==", true)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	if sortBy == "" {
		sortBy = "createdAt"
	}
	order := firestore.Desc
	if sortOrder == "asc" {
		order = firestore.Asc
	}
	query = query.OrderBy(sortBy, order)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	products = postFilter(products, filter)

	return products, int64(len(products)), nil
}

func postFilter(products []*entity.Product, filter repository.ProductFilter) []*entity.Product {
	if len(filter.Tags) == 0 && filter.MinPrice <= 0 && filter.MaxPrice <= 0 {
		return products
	}

	var matched []*entity.Product
	for _, p := range products {
		if filter.MinPrice > 0 && p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		if len(filter.Tags) > 0 && !hasAnyTag(p.Tags, filter.Tags) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func hasAnyTag(productTags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range productTags {
			if t == w {
				return true
			}
		}
	}
	return false
}

func (r *firestoreProductRepository) ListByCompanyID(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").Query.Where("companyId", "==", companyID)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count company products", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate company products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, total, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) IncrementCounter(ctx context.Context, id, field string, delta int) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: firestore.Increment(delta)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product counter", err)
	}

	return nil
}
