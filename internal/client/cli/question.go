package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

func (c *Cli) runQuestion(ctx context.Context, id string) error {
	q, err := c.questions.FetchQuestion(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get question: %w", err)
	}

	c.io.Printf("Question %s\n", q.ID)

	var out bytes.Buffer
	if err := json.Indent(&out, q.Payload, "", "  "); err != nil {
		// Не JSON-объект - печатаем как есть
		c.io.Println(string(q.Payload))
		return nil
	}
	c.io.Println(out.String())
	return nil
}
