package api

import "encoding/json"

// Question представляет содержимое вопроса
type Question struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"` // произвольный JSON, клиент его не интерпретирует
}
