package service

import (
	"context"
	"testing"

	"libris-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService(t *testing.T) {
	ctx := context.Background()

	t.Run("GetBook", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewCatalogService(bookRepo)

		bookRepo.On("GetByID", ctx, int32(7)).
			Return(&domain.Book{ID: 7, Title: "The Go Programming Language", TotalCopies: 3, AvailableCopies: 1}, nil)

		book, err := svc.GetBook(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int32(1), book.AvailableCopies)
	})

	t.Run("Unknown book", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewCatalogService(bookRepo)

		bookRepo.On("GetByID", ctx, int32(404)).Return(nil, domain.ErrBookNotFound)

		_, err := svc.GetBook(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ListBooks", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewCatalogService(bookRepo)

		books := []domain.Book{{ID: 7, Title: "The Go Programming Language"}}
		bookRepo.On("List", ctx, int32(1), int32(20)).Return(books, int32(1), nil)

		got, count, err := svc.ListBooks(ctx, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int32(1), count)
		assert.Len(t, got, 1)
	})
}
