package discord

// Embed segue o formato de webhook do Discord.
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Timestamp   string       `json:"timestamp"`
	Fields      []EmbedField `json:"fields"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Cores usadas nas notificações do CRM.
const (
	ColorDefault = 3447003
	ColorGreen   = 3066993
	ColorGold    = 15844367
	ColorTeal    = 5763719
)

type webhookPayload struct {
	Content string  `json:"content"`
	Embeds  []Embed `json:"embeds,omitempty"`
}
