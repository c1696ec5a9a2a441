package models

// Message is one entry in a per-friend chat transcript. Transcripts are
// append-only; messages are never edited or removed.
type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}
