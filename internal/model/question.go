package model

import "time"

// Question is an FAQ entry submitted by a visitor. Answer is empty until an
// admin answers it; answering again overwrites the previous answer.
type Question struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Answered reports whether an admin has answered the question.
func (q *Question) Answered() bool {
	return q.Answer != ""
}
