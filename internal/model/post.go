package model

import "time"

// Post is a single board record.
// ID is assigned by the store, is never reused and doubles as the listing order key.
// GroupID, StepLevel and IndentLevel place the post inside its reply thread.
type Post struct {
	ID           int64     `json:"id"`
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	Contents     string    `json:"contents"`
	HitCount     int       `json:"hit_count"`
	GroupID      int64     `json:"group_id"`
	StepLevel    int       `json:"step_level"`
	IndentLevel  int       `json:"indent_level"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NumberedPost pairs a listed post with its display number.
type NumberedPost struct {
	Post
	VirtualNumber int `json:"virtual_number"`
}
