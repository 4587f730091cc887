package youtube

import "fmt"

// ShapeError означает, что JSON ответа не соответствует ожидаемой
// структуре для выбранного правила разбора. Payload содержит исходный
// объект, который не удалось разобрать.
type ShapeError struct {
	Missing string
	Payload map[string]any
}

// Error возвращает текст ошибки
func (e *ShapeError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("unexpected response shape: missing %q", e.Missing)
	}
	return "unexpected response shape"
}
