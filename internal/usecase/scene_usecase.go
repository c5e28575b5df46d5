package usecase

import (
	"context"
	"time"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
	"arfurnish/pkg/logger"
)

type SceneUseCase struct {
	sceneRepo   repository.SceneRepository
	productRepo repository.ProductRepository

	// asyncCounters is disabled in tests so counter effects are observable.
	asyncCounters bool
}

func NewSceneUseCase(sceneRepo repository.SceneRepository, productRepo repository.ProductRepository) *SceneUseCase {
	return &SceneUseCase{
		sceneRepo:     sceneRepo,
		productRepo:   productRepo,
		asyncCounters: true,
	}
}

type SceneInput struct {
	Name         string
	RoomImageURL string
	Placements   []entity.ScenePlacement
}

// SaveScene stores a new AR arrangement. Every placed product must exist;
// each placement also counts as an engagement on the product.
func (uc *SceneUseCase) SaveScene(ctx context.Context, userID string, input SceneInput) (*entity.Scene, error) {
	for _, placement := range input.Placements {
		if _, err := uc.productRepo.GetByID(ctx, placement.ProductID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	scene := &entity.Scene{
		UserID:       userID,
		Name:         input.Name,
		RoomImageURL: input.RoomImageURL,
		Placements:   input.Placements,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.sceneRepo.Create(ctx, scene); err != nil {
		return nil, err
	}

	bump := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, placement := range scene.Placements {
			if err := uc.productRepo.IncrementCounter(ctx, placement.ProductID, "placements", 1); err != nil {
				logger.Warn("Failed to increment placements for product %s: %v", placement.ProductID, err)
			}
		}
	}
	if uc.asyncCounters {
		go bump()
	} else {
		bump()
	}

	return scene, nil
}

func (uc *SceneUseCase) GetScene(ctx context.Context, sceneID, userID string) (*entity.Scene, error) {
	scene, err := uc.sceneRepo.GetByID(ctx, sceneID)
	if err != nil {
		return nil, err
	}

	if scene.UserID != userID {
		return nil, errors.Forbidden("You don't have permission to view this scene", nil)
	}

	return scene, nil
}

func (uc *SceneUseCase) ListMyScenes(ctx context.Context, userID string, limit, offset int) ([]*entity.Scene, int64, error) {
	return uc.sceneRepo.ListByUserID(ctx, userID, limit, offset)
}

func (uc *SceneUseCase) UpdateScene(ctx context.Context, sceneID, userID string, input SceneInput) (*entity.Scene, error) {
	scene, err := uc.sceneRepo.GetByID(ctx, sceneID)
	if err != nil {
		return nil, err
	}

	if scene.UserID != userID {
		return nil, errors.Forbidden("You don't have permission to update this scene", nil)
	}

	if input.Name != "" {
		scene.Name = input.Name
	}
	if input.RoomImageURL != "" {
		scene.RoomImageURL = input.RoomImageURL
	}
	if input.Placements != nil {
		for _, placement := range input.Placements {
			if _, err := uc.productRepo.GetByID(ctx, placement.ProductID); err != nil {
				return nil, err
			}
		}
		scene.Placements = input.Placements
	}

	if err := uc.sceneRepo.Update(ctx, scene); err != nil {
		return nil, err
	}

	return scene, nil
}

func (uc *SceneUseCase) DeleteScene(ctx context.Context, sceneID, userID string) error {
	scene, err := uc.sceneRepo.GetByID(ctx, sceneID)
	if err != nil {
		return err
	}

	if scene.UserID != userID {
		return errors.Forbidden("You don't have permission to delete this scene", nil)
	}

	return uc.sceneRepo.Delete(ctx, sceneID)
}
