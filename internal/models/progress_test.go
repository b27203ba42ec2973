package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressEntry_IsNewerThan(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		current  *ProgressEntry
		other    *ProgressEntry
		expected bool
	}{
		{
			name:     "later answer wins",
			current:  &ProgressEntry{AnsweredAt: base.Add(time.Minute), RepetitionCount: 1},
			other:    &ProgressEntry{AnsweredAt: base, RepetitionCount: 5},
			expected: true,
		},
		{
			name:     "earlier answer loses",
			current:  &ProgressEntry{AnsweredAt: base, RepetitionCount: 5},
			other:    &ProgressEntry{AnsweredAt: base.Add(time.Minute), RepetitionCount: 1},
			expected: false,
		},
		{
			name:     "same time, higher repetition wins",
			current:  &ProgressEntry{AnsweredAt: base, RepetitionCount: 3},
			other:    &ProgressEntry{AnsweredAt: base, RepetitionCount: 2},
			expected: true,
		},
		{
			name:     "identical entries are not newer",
			current:  &ProgressEntry{AnsweredAt: base, RepetitionCount: 2},
			other:    &ProgressEntry{AnsweredAt: base, RepetitionCount: 2},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.current.IsNewerThan(tt.other))
		})
	}
}

func TestProgressEntry_IsDue(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	entry := &ProgressEntry{NextReviewAt: day}

	assert.True(t, entry.IsDue(day))
	assert.True(t, entry.IsDue(day.AddDate(0, 0, 1)))
	assert.False(t, entry.IsDue(day.AddDate(0, 0, -1)))
}

func TestProgressEntry_Clone(t *testing.T) {
	original := &ProgressEntry{QuestionID: "q1", RemoteDocID: "doc-1", Revision: 3}
	clone := original.Clone()

	clone.RemoteDocID = "doc-2"
	clone.Revision = 4

	assert.Equal(t, "doc-1", original.RemoteDocID)
	assert.Equal(t, uint64(3), original.Revision)
}
