package sqlstore

import (
	"dorker/pkg/domain"
	"time"
)

// Dork is the database row of a saved dork.
type Dork struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	Name        string `db:"name"`
	Query       string `db:"query"`
	Description string `db:"description"`

	CreatedAt time.Time `db:"created_at"`
}

func (d *Dork) ToDomain() *domain.SavedDork {
	return &domain.SavedDork{
		ID:          domain.SavedDorkID(d.ID),
		Name:        d.Name,
		Query:       d.Query,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func (d *Dork) FromDomain(dork domain.SavedDork) {
	*d = Dork{
		ID:          int64(dork.ID),
		Name:        dork.Name,
		Query:       dork.Query,
		Description: dork.Description,
		CreatedAt:   dork.CreatedAt,
	}
}

func dorksToDomain(rows []Dork) []domain.SavedDork {
	out := make([]domain.SavedDork, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
