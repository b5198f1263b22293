package dto

// IDParams is the schema for routes addressed by a single ":id".
type IDParams struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

// MaxPage bounds the offset a client can ask the database to skip.
const MaxPage = 10000

type PageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1,max=10000"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Normalize fills defaults and returns the row offset.
func (q *PageQuery) Normalize() int {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	return (q.Page - 1) * q.Limit
}
