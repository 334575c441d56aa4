package service

import (
	"context"

	"libris-backend/internal/domain"
	"libris-backend/internal/repository"
)

type catalogService struct {
	bookRepo repository.BookRepository
}

func NewCatalogService(bookRepo repository.BookRepository) CatalogService {
	return &catalogService{bookRepo: bookRepo}
}

func (s *catalogService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

func (s *catalogService) ListBooks(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	return s.bookRepo.List(ctx, page, pageSize)
}
