package catalog

import (
	"context"

	"booklend/internal/domain/book"
)

type Usecase struct{ repo book.Repository }

func NewUsecase(r book.Repository) *Usecase { return &Usecase{repo: r} }

type BookDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

// ListBooks returns the full catalog as a snapshot at call time. No
// pagination, no filtering; callers re-fetch after every mutation.
func (u *Usecase) ListBooks(ctx context.Context) ([]BookDTO, error) {
	books, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BookDTO, 0, len(books))
	for _, b := range books {
		out = append(out, BookDTO{ID: b.ID, Name: b.Name, Author: b.Author, Available: b.Available})
	}
	return out, nil
}
