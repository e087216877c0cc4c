package domain

import "encoding/json"

var (
	addThreadSchema   = requiredStrings("ADD_THREAD", "title", "body", "owner")
	addedThreadSchema = requiredStrings("ADDED_THREAD", "id", "title", "owner")
)

type AddThread struct {
	title string
	body  string
	owner string
}

func NewAddThread(p Payload) (AddThread, error) {
	if err := addThreadSchema.Validate(p); err != nil {
		return AddThread{}, err
	}
	return AddThread{title: p.str("title"), body: p.str("body"), owner: p.str("owner")}, nil
}

func (t AddThread) Title() string { return t.title }
func (t AddThread) Body() string  { return t.body }
func (t AddThread) Owner() string { return t.owner }

func (t AddThread) WithTitle(title string) AddThread {
	t.title = title
	return t
}

func (t AddThread) WithBody(body string) AddThread {
	t.body = body
	return t
}

type AddedThread struct {
	id    string
	title string
	owner string
}

func NewAddedThread(p Payload) (AddedThread, error) {
	if err := addedThreadSchema.Validate(p); err != nil {
		return AddedThread{}, err
	}
	return AddedThread{id: p.str("id"), title: p.str("title"), owner: p.str("owner")}, nil
}

func (t AddedThread) Id() string    { return t.id }
func (t AddedThread) Title() string { return t.title }
func (t AddedThread) Owner() string { return t.owner }

func (t AddedThread) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id    string `json:"id"`
		Title string `json:"title"`
		Owner string `json:"owner"`
	}{t.id, t.title, t.owner})
}
