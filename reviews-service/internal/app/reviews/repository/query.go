package repository

import (
	"chillgamer/reviews-service/internal/app/reviews/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TopReviewsLimit - размер выборки /topreviews
const TopReviewsLimit = 6

// ReviewQuery - фильтр, сортировка и лимит одного запроса find
type ReviewQuery struct {
	Filter bson.M
	Sort   bson.D
	Limit  int64
}

func (q ReviewQuery) findOptions() *options.FindOptions {
	opts := options.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	return opts
}

func (q ReviewQuery) filter() bson.M {
	if q.Filter == nil {
		return bson.M{}
	}
	return q.Filter
}

func AllReviewsQuery() ReviewQuery {
	return ReviewQuery{Filter: bson.M{}}
}

// TopReviewsQuery - первые 6 отзывов по рейтингу, сортировка по возрастанию
// (см. DESIGN.md, открытые вопросы)
func TopReviewsQuery() ReviewQuery {
	return ReviewQuery{
		Filter: bson.M{},
		Sort:   bson.D{{Key: "rating", Value: 1}},
		Limit:  TopReviewsLimit,
	}
}

// CriteriaQuery строит запрос для /reviewsforall.
// filterBy сравнивается с genre точно; неизвестные sortBy игнорируются.
func CriteriaQuery(criteria entity.ListCriteria) ReviewQuery {
	criteria = criteria.Normalize()

	query := ReviewQuery{Filter: bson.M{}}
	if criteria.FilterBy != entity.CriteriaNone {
		query.Filter["genre"] = criteria.FilterBy
	}

	switch criteria.SortBy {
	case entity.SortByRating:
		query.Sort = bson.D{{Key: "rating", Value: 1}}
	case entity.SortByYear:
		query.Sort = bson.D{{Key: "year", Value: 1}}
	}

	return query
}

func SubmitterQuery(email string) ReviewQuery {
	return ReviewQuery{Filter: bson.M{"email": email}}
}

// OwnerFilter - фильтр wishlist по владельцу
func OwnerFilter(ownerField, owner string) bson.M {
	return bson.M{ownerField: owner}
}
