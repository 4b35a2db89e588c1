package repository

import (
	"context"
	"time"

	"github.com/Boggioo/movielist/internal/db"
	"github.com/Boggioo/movielist/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{col: db.DB().Collection("reviews")}
}

func (r *ReviewRepository) FindOne(ctx context.Context, userID, movieID int) (*models.ReviewDoc, error) {
	var rev models.ReviewDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "movieId": movieID}).Decode(&rev)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &rev, err
}

// Upsert crea o pisa la reseña del usuario para esa película.
// createdAt solo se setea al insertar.
func (r *ReviewRepository) Upsert(ctx context.Context, rev *models.ReviewDoc) error {
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": rev.UserID, "movieId": rev.MovieID},
		bson.M{
			"$set": bson.M{
				"username":  rev.Username,
				"rating":    rev.Rating,
				"comment":   rev.Comment,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *ReviewRepository) Delete(ctx context.Context, userID, movieID int) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"userId": userID, "movieId": movieID})
	return err
}

// FindByMovie lista las reseñas de una película, la más nueva primero.
func (r *ReviewRepository) FindByMovie(ctx context.Context, movieID, limit, offset int) ([]models.ReviewDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, bson.M{"movieId": movieID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ReviewDoc
	for cur.Next(ctx) {
		var rev models.ReviewDoc
		if err := cur.Decode(&rev); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, cur.Err()
}
