package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rating categories.
const (
	RatingRelationship  = "relationship"
	RatingProposition   = "proposition"
	RatingTrust         = "trust"
	RatingCompetition   = "competition"
	RatingNeedForAction = "need_for_action"
	RatingBuyingProcess = "buying_process"
	RatingPrice         = "price"
)

// Rating sources.
const (
	RatingSourceKnown   = "known"
	RatingSourceAssumed = "assumed"
	RatingSourceGuessed = "guessed"
)

const (
	RatingMin = 1
	RatingMax = 7
)

var (
	RatingCategories = []string{
		RatingRelationship,
		RatingProposition,
		RatingTrust,
		RatingCompetition,
		RatingNeedForAction,
		RatingBuyingProcess,
		RatingPrice,
	}
	RatingSources = []string{RatingSourceKnown, RatingSourceAssumed, RatingSourceGuessed}
)

// RatingItem is one category score.
type RatingItem struct {
	Rating int    `mapstructure:"rating"`
	Source string `mapstructure:"source"`
}

// Rating scores a sale on seven fixed categories, each 1..7 with a source.
type Rating struct {
	record
}

// NewRating returns a rating with no categories scored.
func NewRating() *Rating {
	return &Rating{record: newRecord()}
}

// RatingFromMap builds a Rating from {category: {rating, source}}. Unknown
// categories and out-of-range scores are rejected.
func RatingFromMap(data map[string]any) (*Rating, error) {
	r := NewRating()
	for _, category := range sortedKeys(data) {
		raw := data[category]
		if raw == nil {
			continue
		}
		var item RatingItem
		if err := weakDecode(raw, &item); err != nil {
			return nil, newInvalidArgument("rating."+category,
				fmt.Sprintf("invalid rating item for %s", category), err)
		}
		if err := r.SetItem(category, item.Rating, item.Source); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// SetItem sets one category.
func (r *Rating) SetItem(category string, rating int, source string) error {
	if err := checkIn("rating", "Rating category", category, RatingCategories); err != nil {
		return err
	}
	if err := checkIntRange("rating."+category,
		fmt.Sprintf("Rating must be between %d and %d", RatingMin, RatingMax),
		rating, RatingMin, RatingMax); err != nil {
		return err
	}
	if err := checkIn("rating."+category+".source", "Rating source", source, RatingSources); err != nil {
		return err
	}
	r.store.SetKey(category, map[string]any{
		"rating": rating,
		"source": source,
	})
	return nil
}

// The category setters below are shorthands for SetItem.
func (r *Rating) SetRelationship(rating int, source string) error {
	return r.SetItem(RatingRelationship, rating, source)
}

func (r *Rating) SetProposition(rating int, source string) error {
	return r.SetItem(RatingProposition, rating, source)
}

func (r *Rating) SetTrust(rating int, source string) error {
	return r.SetItem(RatingTrust, rating, source)
}

func (r *Rating) SetCompetition(rating int, source string) error {
	return r.SetItem(RatingCompetition, rating, source)
}

func (r *Rating) SetNeedForAction(rating int, source string) error {
	return r.SetItem(RatingNeedForAction, rating, source)
}

func (r *Rating) SetBuyingProcess(rating int, source string) error {
	return r.SetItem(RatingBuyingProcess, rating, source)
}

func (r *Rating) SetPrice(rating int, source string) error {
	return r.SetItem(RatingPrice, rating, source)
}

// Item returns the score for category.
func (r *Rating) Item(category string) (RatingItem, bool) {
	raw, ok := r.store.Submap(category)
	if !ok {
		return RatingItem{}, false
	}
	var item RatingItem
	if err := weakDecode(raw, &item); err != nil {
		return RatingItem{}, false
	}
	return item, true
}

// Average returns the mean of the set scores rounded to two places. The
// boolean is false when no category is scored.
func (r *Rating) Average() (float64, bool) {
	sum := decimal.Zero
	n := int64(0)
	for _, category := range RatingCategories {
		if item, ok := r.Item(category); ok {
			sum = sum.Add(decimal.NewFromInt(int64(item.Rating)))
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	avg, _ := sum.Div(decimal.NewFromInt(n)).Round(2).Float64()
	return avg, true
}

// IsComplete reports whether every category is scored.
func (r *Rating) IsComplete() bool {
	for _, category := range RatingCategories {
		if _, ok := r.Item(category); !ok {
			return false
		}
	}
	return true
}
