package models

// FavoriteDoc guarda un favorito por (userId, movieId). El título y el
// poster se denormalizan al agregar para no volver a llamar al
// proveedor al listar.
type FavoriteDoc struct {
	UserID     int    `json:"userId" bson:"userId"`
	MovieID    int    `json:"movieId" bson:"movieId"`
	Title      string `json:"title" bson:"title"`
	PosterPath string `json:"posterPath,omitempty" bson:"posterPath,omitempty"`
	CreatedAt  string `json:"createdAt" bson:"createdAt"`
}
