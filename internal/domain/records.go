package domain

// Storage-side records. Dates are ISO-8601 UTC strings with milliseconds.

type ThreadRecord struct {
	Id       string
	Title    string
	Body     string
	Date     string
	Username string
}

type CommentRecord struct {
	Id       string
	Username string
	Date     string
	Content  StoredContent
}

type ReplyRecord struct {
	Id       string
	Username string
	Date     string
	Content  StoredContent
}

type Like struct {
	CommentId string
	Owner     string
}

// DateLayout is the format every repository uses for record dates.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"
