package notice

// Notice is one entry on the office notice board, independent of any project.
// The board is read-only in this system.
type Notice struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Content string `json:"content"`
}
