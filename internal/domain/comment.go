package domain

import "encoding/json"

var (
	addCommentSchema   = requiredStrings("ADD_COMMENT", "content", "threadId", "owner")
	addedCommentSchema = requiredStrings("ADDED_COMMENT", "id", "content", "owner")
)

type AddComment struct {
	content  string
	threadId string
	owner    string
}

func NewAddComment(p Payload) (AddComment, error) {
	if err := addCommentSchema.Validate(p); err != nil {
		return AddComment{}, err
	}
	return AddComment{
		content:  p.str("content"),
		threadId: p.str("threadId"),
		owner:    p.str("owner"),
	}, nil
}

func (c AddComment) Content() string  { return c.content }
func (c AddComment) ThreadId() string { return c.threadId }
func (c AddComment) Owner() string    { return c.owner }

func (c AddComment) WithContent(content string) AddComment {
	c.content = content
	return c
}

type AddedComment struct {
	id      string
	content string
	owner   string
}

func NewAddedComment(p Payload) (AddedComment, error) {
	if err := addedCommentSchema.Validate(p); err != nil {
		return AddedComment{}, err
	}
	return AddedComment{id: p.str("id"), content: p.str("content"), owner: p.str("owner")}, nil
}

func (c AddedComment) Id() string      { return c.id }
func (c AddedComment) Content() string { return c.content }
func (c AddedComment) Owner() string   { return c.owner }

func (c AddedComment) MarshalJSON() ([]byte, error) {
	return json.Marshal(ownedResult{c.id, c.content, c.owner})
}
