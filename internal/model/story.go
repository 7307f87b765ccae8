package model

// Story is a behavioral-interview answer in STAR form. Categories keeps
// the caller's label order; duplicates are stored as given.
type Story struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Situation  string   `json:"situation"`
	Action     string   `json:"action"`
	Result     string   `json:"result"`
	Ctime      int64    `json:"ctime"`
}
