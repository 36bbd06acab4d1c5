package model

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest is one window of a listing ordered by id. Limit values of zero
// or less fall back to DefaultPageLimit; larger ones are clamped to
// MaxPageLimit. A negative Offset fails validation.
type PageRequest struct {
	Limit  int `query:"limit" json:"limit"`
	Offset int `query:"offset" json:"offset" validate:"min=0"`
}

// Normalize returns p with Limit inside (0, MaxPageLimit].
func (p PageRequest) Normalize() PageRequest {
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultPageLimit
	case p.Limit > MaxPageLimit:
		p.Limit = MaxPageLimit
	}
	return p
}

type PaginatedResponse[T any] struct {
	Data   []T   `json:"data"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// NewPaginatedResponse never carries a nil Data slice, so empty pages encode
// as [].
func NewPaginatedResponse[T any](data []T, page PageRequest, total int64) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{
		Data:   data,
		Limit:  page.Limit,
		Offset: page.Offset,
		Total:  total,
	}
}
