package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	User       UserRepository
	Generation GenerationRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		User:       UserRepository{db: db},
		Generation: GenerationRepository{db: db},
	}
}
