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

type firestoreSceneRepository struct {
	client *firestore.Client
}

func NewFirestoreSceneRepository(client *firestore.Client) repository.SceneRepository {
	return &firestoreSceneRepository{client: client}
}

func (r *firestoreSceneRepository) Create(ctx context.Context, scene *entity.Scene) error {
	if scene.ID == "" {
		doc := r.client.Collection("scenes").NewDoc()
		scene.ID = doc.ID
	}

	now := time.Now()
	if scene.CreatedAt.IsZero() {
		scene.CreatedAt = now
	}
	scene.UpdatedAt = now

	_, err := r.client.Collection("scenes").Doc(scene.ID).Set(ctx, scene)
	if err != nil {
		return errors.Internal("Failed to create scene", err)
	}

	return nil
}

func (r *firestoreSceneRepository) GetByID(ctx context.Context, id string) (*entity.Scene, error) {
	doc, err := r.client.Collection("scenes").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Scene", err)
		}
		return nil, errors.Internal("Failed to get scene", err)
	}

	var scene entity.Scene
	if err := doc.DataTo(&scene); err != nil {
		return nil, errors.Internal("Failed to parse scene data", err)
	}

	return &scene, nil
}

func (r *firestoreSceneRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Scene, int64, error) {
	query := r.client.Collection("scenes").Query.Where("userId", "==", userID)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count scenes", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("updatedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var scenes []*entity.Scene
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate scenes", err)
		}
		var scene entity.Scene
		if err := doc.DataTo(&scene); err != nil {
			return nil, 0, errors.Internal("Failed to parse scene data", err)
		}
		scenes = append(scenes, &scene)
	}

	return scenes, total, nil
}

func (r *firestoreSceneRepository) Update(ctx context.Context, scene *entity.Scene) error {
	scene.UpdatedAt = time.Now()

	_, err := r.client.Collection("scenes").Doc(scene.ID).Set(ctx, scene)
	if err != nil {
		return errors.Internal("Failed to update scene", err)
	}

	return nil
}

func (r *firestoreSceneRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("scenes").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete scene", err)
	}

	return nil
}
