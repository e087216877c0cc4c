package domain

type ContentKind int

const (
	CommentContent ContentKind = iota
	ReplyContent
)

const (
	DeletedCommentPlaceholder = "**komentar telah dihapus**"
	DeletedReplyPlaceholder   = "**balasan telah dihapus**"
)

// Redact returns the text a reader is allowed to see.
func Redact(content string, isDeleted bool, kind ContentKind) string {
	if !isDeleted {
		return content
	}
	if kind == ReplyContent {
		return DeletedReplyPlaceholder
	}
	return DeletedCommentPlaceholder
}

// StoredContent is comment or reply text as kept by storage: either visible
// or soft-deleted. The deleted state can only leave this type through Reveal.
type StoredContent struct {
	text    string
	deleted bool
}

// StoredContentOf picks the variant from a storage deletion flag.
func StoredContentOf(text string, isDeleted bool) StoredContent {
	return StoredContent{text: text, deleted: isDeleted}
}

func (c StoredContent) Reveal(kind ContentKind) string {
	return Redact(c.text, c.deleted, kind)
}
