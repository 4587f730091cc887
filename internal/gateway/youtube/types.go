package youtube

// Playlist представляет плейлист в едином внутреннем виде.
// Все строковые поля опциональны: пустая строка означает, что источник
// не вернул значение. Каждый из трех форматов ответа API проецируется
// в эту же структуру.
type Playlist struct {
	ID           string
	Kind         string
	Title        string
	Etag         string
	ResourceID   string
	PlaylistID   string
	ChannelID    string
	ChannelTitle string
	Description  string
	PublishedAt  string
	Thumbnails   map[string]any
}

// PageInfo содержит копию объекта pageInfo из ответа API плюс ключи
// nextPageToken и prevPageToken (nil, если токен отсутствует в ответе)
type PageInfo map[string]any

// NextPageToken возвращает токен следующей страницы или пустую строку
func (p PageInfo) NextPageToken() string {
	token, _ := p["nextPageToken"].(string)
	return token
}

// PrevPageToken возвращает токен предыдущей страницы или пустую строку
func (p PageInfo) PrevPageToken() string {
	token, _ := p["prevPageToken"].(string)
	return token
}
