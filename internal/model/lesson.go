package model

import "time"

// Lesson represents a lesson entity in the domain layer.
// Quizzes and notes share this plumbing; lessons are the representative
// record type of the education surface.
type Lesson struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Subject   string     `json:"subject"`
	Content   string     `json:"content"`
	AuthorID  string     `json:"author_id"`
	Published bool       `json:"published"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}
