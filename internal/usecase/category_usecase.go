package usecase

import (
	"context"
	"strings"
	"time"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

type CategoryInput struct {
	Name        string
	Description string
	IconURL     string
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}

func (uc *CategoryUseCase) CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error) {
	slug := slugify(input.Name)
	if slug == "" {
		return nil, errors.BadRequest("Category name is required", nil)
	}

	if existing, err := uc.categoryRepo.GetBySlug(ctx, slug); err == nil && existing != nil {
		return nil, errors.Conflict("Category already exists")
	}

	now := time.Now()
	category := &entity.Category{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		IconURL:     input.IconURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		category.Name = input.Name
		category.Slug = slugify(input.Name)
	}
	if input.Description != "" {
		category.Description = input.Description
	}
	if input.IconURL != "" {
		category.IconURL = input.IconURL
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.categoryRepo.Delete(ctx, id)
}
