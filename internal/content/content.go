package content

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/forumapi-dev/forumapi/internal/errors"
)

// Processor cleans user supplied text before it is stored. Markup is
// stripped and the remainder must still carry something a reader can see.
type Processor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Processor {
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
	)

	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithExtensions(extension.Strikethrough),
	)
	return &Processor{md: md, policy: bluemonday.StrictPolicy()}
}

// maxDecodePasses bounds how many layers of entity encoding Clean peels off.
const maxDecodePasses = 4

// Clean returns the sanitized text or an InvariantError naming field when
// nothing visible is left. Entities are decoded and the result sanitized
// again until it is stable, so encoded markup cannot survive as live tags.
func (p *Processor) Clean(field, input string) (string, error) {
	cleaned, ok := p.sanitize(input)
	if !ok {
		return "", &errors.InvariantError{Message: field + " mengandung markup yang tidak diizinkan"}
	}
	cleaned = strings.TrimSpace(cleaned)
	if !p.HasPayload(cleaned) {
		return "", &errors.InvariantError{Message: field + " tidak boleh kosong"}
	}
	return cleaned, nil
}

// sanitize reports false when the text is still changing after
// maxDecodePasses rounds.
func (p *Processor) sanitize(input string) (string, bool) {
	current := input
	for range maxDecodePasses {
		next := html.UnescapeString(p.policy.Sanitize(current))
		if next == current {
			return current, true
		}
		current = next
	}
	return current, false
}

// HasPayload reports whether the markdown in src renders any non-blank text.
func (p *Processor) HasPayload(src string) bool {
	source := []byte(src)
	doc := p.md.Parser().Parse(text.NewReader(source))

	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			if len(strings.TrimSpace(string(node.Segment.Value(source)))) > 0 {
				found = true
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				if len(strings.TrimSpace(string(seg.Value(source)))) > 0 {
					found = true
					break
				}
			}
		}
		if found {
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}
