package api

import "time"

// Progress представляет состояние повторения вопроса на сервере
type Progress struct {
	NextReviewAt    time.Time `json:"next_review_at"`
	AnsweredAt      time.Time `json:"answered_at"`
	DocID           string    `json:"doc_id,omitempty"` // заполняется сервером
	QuestionID      string    `json:"question_id"`
	EaseFactor      float64   `json:"ease_factor"`
	Quality         int       `json:"quality"`
	RepetitionCount int       `json:"repetition_count"`
}

// CreateProgressResponse представляет ответ на создание записи прогресса
type CreateProgressResponse struct {
	DocID   string `json:"doc_id"`  // идентификатор документа прогресса
	Created bool   `json:"created"` // false, если запись для вопроса уже существовала
}

// UpdateProgressResponse представляет ответ на обновление записи прогресса
type UpdateProgressResponse struct {
	Applied bool `json:"applied"` // false, если на сервере уже более новая запись
}

// ListProgressResponse представляет список прогресса пользователя
type ListProgressResponse struct {
	Progress []Progress `json:"progress"`
}
