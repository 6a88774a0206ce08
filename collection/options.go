package collection

import (
	"github.com/npillmayer/immutable/persistent/vector"
)

// Option is a type to help configuring eager collections at creation time.
type Option struct {
	config func(props) props
}

type props struct {
	bits int // bits per level of the persistent vector storage
}

// WithBitsPerLevel sets the degree of the trie backing an eager Sequence to 2^n.
// See vector.BitsPerLevel.
func WithBitsPerLevel(n int) Option {
	return Option{config: func(p props) props {
		p.bits = n
		return p
	}}
}

func configure(opts []Option) props {
	var p props
	for _, option := range opts {
		p = option.config(p)
	}
	return p
}

func (p props) vectorOptions() []vector.Option {
	if p.bits == 0 {
		return nil
	}
	return []vector.Option{vector.BitsPerLevel(p.bits)}
}
