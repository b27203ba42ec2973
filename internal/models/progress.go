package models

import "time"

// ProgressEntry is the scheduling state of one question for the current user.
//
// The same struct is used for the pending upload log (one live entry per question,
// a later answer supersedes the earlier one) and for the known state kept after sync.
type ProgressEntry struct {
	NextReviewAt    time.Time `json:"next_review_at"`          // NextReviewAt day the question is due again
	AnsweredAt      time.Time `json:"answered_at"`             // AnsweredAt wall-clock time of the answer, used for last-write-wins
	QuestionID      string    `json:"question_id"`             // QuestionID question this entry schedules
	RemoteDocID     string    `json:"remote_doc_id,omitempty"` // RemoteDocID id assigned by the remote store, empty until the first create
	EaseFactor      float64   `json:"ease_factor"`             // EaseFactor current ease factor
	Quality         int       `json:"quality"`                 // Quality quality of the latest answer
	RepetitionCount int       `json:"repetition_count"`        // RepetitionCount number of recorded answers
	Revision        uint64    `json:"revision,omitempty"`      // Revision local write counter, never sent to the remote store
}

// IsNewerThan reports whether e was answered after other.
// Ties are broken by repetition count so the comparison stays deterministic.
func (e *ProgressEntry) IsNewerThan(other *ProgressEntry) bool {
	if e.AnsweredAt.After(other.AnsweredAt) {
		return true
	}
	if e.AnsweredAt.Before(other.AnsweredAt) {
		return false
	}
	return e.RepetitionCount > other.RepetitionCount
}

// IsDue reports whether the question should be reviewed on day.
func (e *ProgressEntry) IsDue(day time.Time) bool {
	return !e.NextReviewAt.After(day)
}

// Clone returns a copy of the entry.
func (e *ProgressEntry) Clone() *ProgressEntry {
	c := *e
	return &c
}
