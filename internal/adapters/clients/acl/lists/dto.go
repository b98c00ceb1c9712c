// Package lists implements the Anti-Corruption Layer translators for the
// remote API's todo-list resources.
package lists

// TodolistDTO matches the remote TodolistType schema.
type TodolistDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	AddedDate string `json:"addedDate"`
	Order     int    `json:"order"`
}

// TitleRequestDTO is the body of create and rename requests.
type TitleRequestDTO struct {
	Title string `json:"title"`
}
