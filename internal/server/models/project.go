package models

import "time"

// Project is a portfolio project record. Thumbnail holds the object storage
// key of an uploaded image, if any.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Features    string    `json:"features,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	GithubURL   string    `json:"githubUrl,omitempty"`
	LiveURL     string    `json:"liveUrl,omitempty"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
