package models

import "time"

type PostStatus int16

const (
	StatusDraft     PostStatus = 0
	StatusPublished PostStatus = 1
)

type Post struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	UserID    int64      `json:"user_id"`
	Body      string     `json:"body"`
	Status    PostStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
