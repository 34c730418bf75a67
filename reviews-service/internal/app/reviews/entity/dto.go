package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	// CriteriaNone - значение sortBy/filterBy по умолчанию, означает "без условия"
	CriteriaNone = "none"

	SortByRating = "rating"
	SortByYear   = "year"
)

// ListCriteria - параметры GET /reviewsforall
type ListCriteria struct {
	SortBy   string `form:"sortBy"`
	FilterBy string `form:"filterBy"`
}

// Normalize подставляет "none" вместо пустых значений
func (c ListCriteria) Normalize() ListCriteria {
	if c.SortBy == "" {
		c.SortBy = CriteriaNone
	}
	if c.FilterBy == "" {
		c.FilterBy = CriteriaNone
	}
	return c
}

// InsertResult повторяет форму ответа insertOne драйвера MongoDB
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult повторяет форму ответа updateOne с upsert
type UpdateResult struct {
	Acknowledged  bool                `json:"acknowledged"`
	MatchedCount  int64               `json:"matchedCount"`
	ModifiedCount int64               `json:"modifiedCount"`
	UpsertedCount int64               `json:"upsertedCount"`
	UpsertedID    *primitive.ObjectID `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
