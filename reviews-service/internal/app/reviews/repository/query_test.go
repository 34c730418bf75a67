package repository

import (
	"testing"

	"chillgamer/reviews-service/internal/app/reviews/entity"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCriteriaQuery(t *testing.T) {
	tests := []struct {
		name       string
		criteria   entity.ListCriteria
		wantFilter bson.M
		wantSort   bson.D
	}{
		{
			name:       "defaults mean no filter and no sort",
			criteria:   entity.ListCriteria{},
			wantFilter: bson.M{},
		},
		{
			name:       "explicit none",
			criteria:   entity.ListCriteria{SortBy: "none", FilterBy: "none"},
			wantFilter: bson.M{},
		},
		{
			name:       "filter by genre is exact",
			criteria:   entity.ListCriteria{FilterBy: "RPG"},
			wantFilter: bson.M{"genre": "RPG"},
		},
		{
			name:       "sort by rating ascending",
			criteria:   entity.ListCriteria{SortBy: "rating"},
			wantFilter: bson.M{},
			wantSort:   bson.D{{Key: "rating", Value: 1}},
		},
		{
			name:       "sort by year ascending with filter",
			criteria:   entity.ListCriteria{SortBy: "year", FilterBy: "Action"},
			wantFilter: bson.M{"genre": "Action"},
			wantSort:   bson.D{{Key: "year", Value: 1}},
		},
		{
			name:       "unknown sort key is inert",
			criteria:   entity.ListCriteria{SortBy: "title"},
			wantFilter: bson.M{},
		},
		{
			name:       "sort key is case sensitive",
			criteria:   entity.ListCriteria{SortBy: "Rating", FilterBy: "rpg"},
			wantFilter: bson.M{"genre": "rpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := CriteriaQuery(tt.criteria)

			assert.Equal(t, tt.wantFilter, query.Filter)
			assert.Equal(t, tt.wantSort, query.Sort)
			assert.Zero(t, query.Limit)
		})
	}
}

func TestTopReviewsQuery(t *testing.T) {
	query := TopReviewsQuery()

	assert.Equal(t, bson.M{}, query.Filter)
	assert.Equal(t, bson.D{{Key: "rating", Value: 1}}, query.Sort)
	assert.EqualValues(t, 6, query.Limit)

	opts := query.findOptions()
	assert.Equal(t, int64(6), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "rating", Value: 1}}, opts.Sort)
}

func TestSubmitterQuery(t *testing.T) {
	query := SubmitterQuery("a@x.com")

	assert.Equal(t, bson.M{"email": "a@x.com"}, query.Filter)
	assert.Nil(t, query.Sort)
}

func TestReviewQuery_NilFilterBecomesEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, ReviewQuery{}.filter())
	assert.Nil(t, ReviewQuery{}.findOptions().Sort)
	assert.Nil(t, ReviewQuery{}.findOptions().Limit)
}
