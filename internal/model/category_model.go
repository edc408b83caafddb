package model

import "time"

type Category struct {
	CategoryID string     `json:"id"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}
