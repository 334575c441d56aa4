package postgres

import (
	"context"
	"database/sql"

	"libris-backend/internal/domain"
	"libris-backend/internal/logger"
	"libris-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT id, title, author, total_copies, available_copies, created_on, updated_on FROM books WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.TotalCopies, &b.AvailableCopies, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, scanErr("get book", err, domain.ErrBookNotFound)
	}
	return b, nil
}

func (r *bookRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM books`).Scan(&count); err != nil {
		return nil, 0, storageErr("count books", err)
	}

	query := `SELECT id, title, author, total_copies, available_copies, created_on, updated_on
	          FROM books ORDER BY title ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, storageErr("list books", err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.TotalCopies, &b.AvailableCopies, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, 0, storageErr("scan book", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storageErr("iterate books", err)
	}
	return books, count, nil
}

// AdjustAvailable applies a copy-count delta without ever crossing the
// 0..total_copies bounds. A refused decrement is an ordinary conflict (no
// copies left); a refused increment means the counts are already wrong.
func (r *bookRepository) AdjustAvailable(ctx context.Context, bookID, delta int32) error {
	query := `UPDATE books
	          SET available_copies = available_copies + $2, updated_on = NOW()
	          WHERE id = $1
	            AND available_copies + $2 >= 0
	            AND available_copies + $2 <= total_copies`
	res, err := r.db.ExecContext(ctx, query, bookID, delta)
	if err != nil {
		return storageErr("adjust available copies", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("adjust available copies", err)
	}
	if n == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, bookID).Scan(&exists); err != nil {
		return storageErr("adjust available copies", err)
	}
	if !exists {
		return domain.ErrBookNotFound
	}
	if delta < 0 {
		return domain.ErrNoCopiesAvailable
	}
	logger.Error("release would exceed total copies", "book_id", bookID, "delta", delta)
	return domain.ErrInventoryIntegrity
}
