package api

import "time"

// MaxBulkRecords ограничивает количество записей в одном запросе пакетной вставки
const MaxBulkRecords = 1000

// AnswerRecord представляет одну запись аналитики ответа
type AnswerRecord struct {
	CompletedAt     time.Time `json:"completed_at"`     // день ответа (полночь UTC)
	ID              string    `json:"id"`               // ULID, сгенерированный клиентом (ключ идемпотентности)
	UserID          string    `json:"user_id"`          // идентификатор пользователя
	QuestionID      string    `json:"question_id"`      // идентификатор вопроса
	EaseFactor      float64   `json:"ease_factor"`      // ease factor после ответа
	Quality         int       `json:"quality"`          // оценка ответа 0..5
	RepetitionCount int       `json:"repetition_count"` // количество повторений после ответа
}

// BulkInsertAnswersRequest представляет запрос на пакетную вставку ответов
type BulkInsertAnswersRequest struct {
	Records []AnswerRecord `json:"records"`
}

// BulkInsertAnswersResponse представляет ответ на пакетную вставку
type BulkInsertAnswersResponse struct {
	Accepted   int `json:"accepted"`           // количество новых записей
	Duplicates int `json:"duplicates"`         // количество записей, уже известных серверу
	Rejected   int `json:"rejected,omitempty"` // записи чужого пользователя или невалидные, не сохранены
}
