package models

// ReviewDoc: una reseña por (userId, movieId). Rating en 1..10,
// comment opcional. Username denormalizado para listar sin join.
type ReviewDoc struct {
	UserID    int    `json:"userId" bson:"userId"`
	MovieID   int    `json:"movieId" bson:"movieId"`
	Username  string `json:"username" bson:"username"`
	Rating    int    `json:"rating" bson:"rating"`
	Comment   string `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt"`
}
