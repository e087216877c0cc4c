package idgen

import "github.com/google/uuid"

// Generator supplies the random part of new record ids. Repositories add the
// kind prefix, e.g. "thread-".
type Generator interface {
	NewId() string
}

// Func adapts a plain function to Generator.
type Func func() string

func (f Func) NewId() string {
	return f()
}

// UUID generates random v4 uuids.
var UUID Generator = Func(uuid.NewString)

// Prefixed joins a kind prefix and a fresh id: Prefixed(g, "comment") -> "comment-<id>".
func Prefixed(g Generator, kind string) string {
	return kind + "-" + g.NewId()
}
