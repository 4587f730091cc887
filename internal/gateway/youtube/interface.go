package youtube

import "context"

// Query представляет параметры запроса к API (строки или числа)
type Query map[string]any

// Gateway определяет интерфейс HTTP-шлюза для запросов к API
type Gateway interface {
	// Get выполняет GET-запрос и возвращает декодированный JSON
	Get(ctx context.Context, path string, query Query) (map[string]any, error)
}
