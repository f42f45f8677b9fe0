package dto

// Page is the standard list envelope.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// PageQuery carries the common pagination query parameters. Defaults are
// applied by Normalize.
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 20
	}
	if q.PageSize > 200 {
		q.PageSize = 200
	}
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}
