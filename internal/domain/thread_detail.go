package domain

import "encoding/json"

var (
	threadDetailSchema = Schema{
		Entity: "THREAD_DETAIL",
		Fields: []Field{
			{Name: "id", Type: String, Required: true},
			{Name: "title", Type: String, Required: true},
			{Name: "body", Type: String, Required: true},
			{Name: "date", Type: String, Required: true},
			{Name: "username", Type: String, Required: true},
			{Name: "comments", Type: CommentDetailList},
		},
	}
	commentDetailSchema = Schema{
		Entity: "COMMENT_DETAIL",
		Fields: []Field{
			{Name: "id", Type: String, Required: true},
			{Name: "username", Type: String, Required: true},
			{Name: "date", Type: String, Required: true},
			{Name: "content", Type: String, Required: true},
			{Name: "likeCount", Type: NonNegativeInt},
			{Name: "replies", Type: ReplyDetailList},
		},
	}
	replyDetailSchema = requiredStrings("REPLY_DETAIL", "id", "username", "date", "content")
)

// ThreadDetail is the assembled read view of a thread.
type ThreadDetail struct {
	id       string
	title    string
	body     string
	date     string
	username string
	comments []CommentDetail
}

func NewThreadDetail(p Payload) (ThreadDetail, error) {
	if err := threadDetailSchema.Validate(p); err != nil {
		return ThreadDetail{}, err
	}
	comments, _ := p["comments"].([]CommentDetail)
	if comments == nil {
		comments = []CommentDetail{}
	}
	return ThreadDetail{
		id:       p.str("id"),
		title:    p.str("title"),
		body:     p.str("body"),
		date:     p.str("date"),
		username: p.str("username"),
		comments: comments,
	}, nil
}

func (t ThreadDetail) Id() string                { return t.id }
func (t ThreadDetail) Title() string             { return t.title }
func (t ThreadDetail) Body() string              { return t.body }
func (t ThreadDetail) Date() string              { return t.date }
func (t ThreadDetail) Username() string          { return t.username }
func (t ThreadDetail) Comments() []CommentDetail { return t.comments }

func (t ThreadDetail) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id       string          `json:"id"`
		Title    string          `json:"title"`
		Body     string          `json:"body"`
		Date     string          `json:"date"`
		Username string          `json:"username"`
		Comments []CommentDetail `json:"comments"`
	}{t.id, t.title, t.body, t.date, t.username, t.comments})
}

type CommentDetail struct {
	id        string
	username  string
	date      string
	content   string
	likeCount int
	replies   []ReplyDetail
}

func NewCommentDetail(p Payload) (CommentDetail, error) {
	if err := commentDetailSchema.Validate(p); err != nil {
		return CommentDetail{}, err
	}
	replies, _ := p["replies"].([]ReplyDetail)
	if replies == nil {
		replies = []ReplyDetail{}
	}
	return CommentDetail{
		id:        p.str("id"),
		username:  p.str("username"),
		date:      p.str("date"),
		content:   p.str("content"),
		likeCount: p.intOr("likeCount", 0),
		replies:   replies,
	}, nil
}

func (c CommentDetail) Id() string             { return c.id }
func (c CommentDetail) Username() string       { return c.username }
func (c CommentDetail) Date() string           { return c.date }
func (c CommentDetail) Content() string        { return c.content }
func (c CommentDetail) LikeCount() int         { return c.likeCount }
func (c CommentDetail) Replies() []ReplyDetail { return c.replies }

func (c CommentDetail) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id        string        `json:"id"`
		Username  string        `json:"username"`
		Date      string        `json:"date"`
		Content   string        `json:"content"`
		LikeCount int           `json:"likeCount"`
		Replies   []ReplyDetail `json:"replies"`
	}{c.id, c.username, c.date, c.content, c.likeCount, c.replies})
}

type ReplyDetail struct {
	id       string
	username string
	date     string
	content  string
}

func NewReplyDetail(p Payload) (ReplyDetail, error) {
	if err := replyDetailSchema.Validate(p); err != nil {
		return ReplyDetail{}, err
	}
	return ReplyDetail{
		id:       p.str("id"),
		username: p.str("username"),
		date:     p.str("date"),
		content:  p.str("content"),
	}, nil
}

func (r ReplyDetail) Id() string       { return r.id }
func (r ReplyDetail) Username() string { return r.username }
func (r ReplyDetail) Date() string     { return r.date }
func (r ReplyDetail) Content() string  { return r.content }

func (r ReplyDetail) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id       string `json:"id"`
		Content  string `json:"content"`
		Date     string `json:"date"`
		Username string `json:"username"`
	}{r.id, r.content, r.date, r.username})
}
