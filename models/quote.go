package models

// Quote is an entry of the backend quotes collection.
type Quote struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Author  string `json:"author"`
}
