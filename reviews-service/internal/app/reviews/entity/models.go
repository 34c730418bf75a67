package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review - отзыв пользователя об игре.
// Поля, которых нет в схеме, сохраняются как есть в Extra и хранятся
// в том же документе MongoDB (inline), а в JSON выводятся на верхнем уровне.
type Review struct {
	ID       primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	Title    string                 `json:"title" bson:"title"`
	Image    string                 `json:"image" bson:"image"`
	Review   string                 `json:"review" bson:"review"`
	Rating   float64                `json:"rating" bson:"rating"`
	Year     int                    `json:"year" bson:"year"`
	Genre    string                 `json:"genre" bson:"genre"`
	Email    string                 `json:"email" bson:"email"`
	UserName string                 `json:"userName" bson:"userName"`
	Extra    map[string]interface{} `json:"-" bson:",inline"`
}

// reviewKeys - ключи, которые в JSON принадлежат самой структуре, а не Extra
var reviewKeys = map[string]struct{}{
	"_id": {}, "title": {}, "image": {}, "review": {}, "rating": {},
	"year": {}, "genre": {}, "email": {}, "userName": {},
}

type reviewAlias Review

func (r Review) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(reviewAlias(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return known, nil
	}

	merged := make(map[string]json.RawMessage, len(r.Extra)+len(reviewKeys))
	for key, value := range r.Extra {
		if _, ok := reviewKeys[key]; ok {
			continue
		}
		raw, err := json.Marshal(plainValue(value))
		if err != nil {
			return nil, err
		}
		merged[key] = raw
	}
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}

	return json.Marshal(merged)
}

// UnmarshalJSON сопоставляет ключи схемы точно, с учетом регистра:
// "Title" или "username" попадут в Extra как есть, а не в Title/UserName.
func (r *Review) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var review Review
	targets := map[string]interface{}{
		"title":    &review.Title,
		"image":    &review.Image,
		"review":   &review.Review,
		"rating":   &review.Rating,
		"year":     &review.Year,
		"genre":    &review.Genre,
		"email":    &review.Email,
		"userName": &review.UserName,
	}

	for key, value := range raw {
		if key == "_id" {
			// _id, который не является ObjectID, игнорируется: его назначает хранилище
			var id primitive.ObjectID
			if err := json.Unmarshal(value, &id); err == nil {
				review.ID = id
			}
			continue
		}

		if target, ok := targets[key]; ok {
			if err := json.Unmarshal(value, target); err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
			continue
		}

		var decoded interface{}
		if err := json.Unmarshal(value, &decoded); err != nil {
			return err
		}
		if review.Extra == nil {
			review.Extra = make(map[string]interface{})
		}
		review.Extra[key] = decoded
	}

	*r = review
	return nil
}

// ReviewFields - фиксированный набор полей для замены отзыва.
// Остальные поля документа при замене не трогаются.
// Поле, которого нет в теле запроса, записывается как null.
type ReviewFields struct {
	Title    *string  `json:"title"`
	Image    *string  `json:"image"`
	Review   *string  `json:"review"`
	Rating   *float64 `json:"rating"`
	Year     *int     `json:"year"`
	Genre    *string  `json:"genre"`
	Email    *string  `json:"email"`
	UserName *string  `json:"userName"`
}

// SetDocument - содержимое оператора $set
func (f ReviewFields) SetDocument() bson.D {
	return bson.D{
		{Key: "title", Value: nullable(f.Title)},
		{Key: "image", Value: nullable(f.Image)},
		{Key: "review", Value: nullable(f.Review)},
		{Key: "rating", Value: nullable(f.Rating)},
		{Key: "year", Value: nullable(f.Year)},
		{Key: "genre", Value: nullable(f.Genre)},
		{Key: "email", Value: nullable(f.Email)},
		{Key: "userName", Value: nullable(f.UserName)},
	}
}

func nullable[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

// Document - запись без фиксированной схемы (wishlist, users)
type Document map[string]interface{}

func (d Document) MarshalJSON() ([]byte, error) {
	plain := make(map[string]interface{}, len(d))
	for key, value := range d {
		plain[key] = plainValue(value)
	}
	return json.Marshal(plain)
}

// plainValue переводит вложенные bson.D/bson.A в обычные map/slice,
// иначе bson.D сериализуется в JSON как массив пар Key/Value
func plainValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.D:
		m := make(map[string]interface{}, len(v))
		for _, elem := range v {
			m[elem.Key] = plainValue(elem.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]interface{}, len(v))
		for key, elem := range v {
			m[key] = plainValue(elem)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, elem := range v {
			m[key] = plainValue(elem)
		}
		return m
	case primitive.A:
		items := make([]interface{}, len(v))
		for i, elem := range v {
			items[i] = plainValue(elem)
		}
		return items
	case []interface{}:
		items := make([]interface{}, len(v))
		for i, elem := range v {
			items[i] = plainValue(elem)
		}
		return items
	default:
		return value
	}
}

type ReviewEventType string

const (
	ReviewCreated  ReviewEventType = "REVIEW_CREATED"
	ReviewReplaced ReviewEventType = "REVIEW_REPLACED"
	ReviewDeleted  ReviewEventType = "REVIEW_DELETED"
)

type ReviewEvent struct {
	EventType ReviewEventType `json:"event_type"`
	ReviewID  string          `json:"review_id"`
	Genre     string          `json:"genre,omitempty"`
	Rating    float64         `json:"rating,omitempty"`
	Email     string          `json:"email,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
