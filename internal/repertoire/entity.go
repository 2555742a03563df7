package repertoire

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Repertoire struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        Type       `json:"type"`
	Category    Category   `json:"category"`
	Popularity  Popularity `json:"popularity"`
	Year        Year       `json:"year"`
	Rating      Rating     `json:"rating"`
	Keywords    []string   `json:"keywords"`
}

// Year accepts both "2015" and 2015 since the model is not consistent about it.
type Year string

func (y *Year) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*y = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*y = Year(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*y = Year(n.String())
	return nil
}

// Rating accepts integers, fractions (rounded) and numeric strings. null is 0.
type Rating int

func (r *Rating) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*r = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		s = strings.TrimSpace(v)
		if s == "" {
			*r = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid rating %s: %w", string(b), err)
	}
	*r = Rating(math.Round(f))
	return nil
}

type Filters struct {
	Type       string `json:"type,omitempty"`
	Category   string `json:"category,omitempty"`
	Popularity string `json:"popularity,omitempty"`
}

func isSet(v string) bool {
	return v != "" && v != filterAll
}

func (f Filters) HasType() bool       { return isSet(f.Type) }
func (f Filters) HasCategory() bool   { return isSet(f.Category) }
func (f Filters) HasPopularity() bool { return isSet(f.Popularity) }

type Analysis struct {
	Keywords            []string   `json:"keywords"`
	SuggestedTypes      []Type     `json:"suggestedTypes"`
	SuggestedCategories []Category `json:"suggestedCategories"`
	NormalizedQuery     string     `json:"normalizedQuery"`
}

type Batch struct {
	Items  []Repertoire `json:"repertoires"`
	Source Source       `json:"source"`
}

type SearchRequest struct {
	Query     string  `json:"query" validate:"required,max=500"`
	Filters   Filters `json:"filters"`
	BatchSize int     `json:"batchSize" validate:"gte=0,lte=50"`
}

type SearchResponse struct {
	Analysis    Analysis     `json:"analysis"`
	Repertoires []Repertoire `json:"repertoires"`
	Source      Source       `json:"source"`
}

type RankRequest struct {
	Query       string       `json:"query" validate:"required"`
	Repertoires []Repertoire `json:"repertoires"`
}
