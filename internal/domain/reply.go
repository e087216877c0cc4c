package domain

import "encoding/json"

var (
	addReplySchema   = requiredStrings("ADD_REPLY", "content", "commentId", "threadId", "owner")
	addedReplySchema = requiredStrings("ADDED_REPLY", "id", "content", "owner")
)

// AddReply is the command to post a reply under a comment.
type AddReply struct {
	content   string
	commentId string
	threadId  string
	owner     string
}

func NewAddReply(p Payload) (AddReply, error) {
	if err := addReplySchema.Validate(p); err != nil {
		return AddReply{}, err
	}
	return AddReply{
		content:   p.str("content"),
		commentId: p.str("commentId"),
		threadId:  p.str("threadId"),
		owner:     p.str("owner"),
	}, nil
}

func (r AddReply) Content() string   { return r.content }
func (r AddReply) CommentId() string { return r.commentId }
func (r AddReply) ThreadId() string  { return r.threadId }
func (r AddReply) Owner() string     { return r.owner }

// WithContent returns a copy carrying sanitized content.
func (r AddReply) WithContent(content string) AddReply {
	r.content = content
	return r
}

type AddedReply struct {
	id      string
	content string
	owner   string
}

func NewAddedReply(p Payload) (AddedReply, error) {
	if err := addedReplySchema.Validate(p); err != nil {
		return AddedReply{}, err
	}
	return AddedReply{id: p.str("id"), content: p.str("content"), owner: p.str("owner")}, nil
}

func (r AddedReply) Id() string      { return r.id }
func (r AddedReply) Content() string { return r.content }
func (r AddedReply) Owner() string   { return r.owner }

func (r AddedReply) MarshalJSON() ([]byte, error) {
	return json.Marshal(ownedResult{r.id, r.content, r.owner})
}

// ownedResult is the wire shape shared by added comments and replies.
type ownedResult struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}
