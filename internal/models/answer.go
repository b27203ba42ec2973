package models

import "time"

// AnswerRecord is one entry of the analytics log.
// Records are immutable once written and leave the device only through a confirmed upload.
type AnswerRecord struct {
	CompletedAt     time.Time `json:"completed_at"`     // CompletedAt day-stamp of the answer (UTC midnight)
	ID              string    `json:"id"`               // ID ULID assigned on the device; the remote insert is idempotent on it
	UserID          string    `json:"user_id"`          // UserID owner of the answer
	QuestionID      string    `json:"question_id"`      // QuestionID answered question
	EaseFactor      float64   `json:"ease_factor"`      // EaseFactor ease factor after this answer
	Quality         int       `json:"quality"`          // Quality self-reported recall quality 0..5
	RepetitionCount int       `json:"repetition_count"` // RepetitionCount repetition count after this answer
}
