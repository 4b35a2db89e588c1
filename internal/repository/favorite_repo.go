package repository

import (
	"context"

	"github.com/Boggioo/movielist/internal/db"
	"github.com/Boggioo/movielist/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{col: db.DB().Collection("favorites")}
}

func (r *FavoriteRepository) FindOne(ctx context.Context, userID, movieID int) (*models.FavoriteDoc, error) {
	var f models.FavoriteDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "movieId": movieID}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &f, err
}

func (r *FavoriteRepository) Insert(ctx context.Context, f *models.FavoriteDoc) error {
	_, err := r.col.InsertOne(ctx, f)
	return err
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, movieID int) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"userId": userID, "movieId": movieID})
	return err
}

// FindByUser lista los favoritos del usuario, el más reciente primero.
func (r *FavoriteRepository) FindByUser(ctx context.Context, userID int) ([]models.FavoriteDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.FavoriteDoc
	for cur.Next(ctx) {
		var f models.FavoriteDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, cur.Err()
}
