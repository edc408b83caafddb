package model

import "time"

type Jersey struct {
	JerseyID     string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	CategoryID   *string    `json:"category_id,omitempty"`
	Team         string     `json:"team"`
	PlayerName   string     `json:"player_name"`
	PlayerNumber string     `json:"player_number"`
	ImageURL     string     `json:"image_url"`
	Stock        int        `json:"stock"`
	Sizes        []string   `json:"sizes"`
	Featured     bool       `json:"featured"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// HasSize reports whether s is one of the jersey's available sizes.
func (j *Jersey) HasSize(s string) bool {
	for _, have := range j.Sizes {
		if have == s {
			return true
		}
	}
	return false
}
