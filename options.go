package bbcode

import "fmt"

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// MaxDepth limits tag nesting to n levels, returning a *MaxDepthError when
// input exceeds it. Nesting depth equals recursion depth in the matcher,
// so this is also the call-stack bound for untrusted input.
//
// The default is DefaultMaxDepth. A value of 0 disables the limit.
func MaxDepth(n int) Option {
	return func(p *Parser) error {
		if n < 0 {
			return fmt.Errorf("max depth must be >= 0 but is %d", n)
		}
		p.maxDepth = n
		return nil
	}
}

// MaxTags limits the total number of tag blocks in a single parse,
// returning a *TagLimitError when input exceeds it. Disabled by default;
// a value of 0 disables the limit.
func MaxTags(n int) Option {
	return func(p *Parser) error {
		if n < 0 {
			return fmt.Errorf("max tags must be >= 0 but is %d", n)
		}
		p.maxTags = n
		return nil
	}
}

// MaxInputSize limits the input length in bytes, returning an
// *InputLimitError before any parsing occurs. Disabled by default; a
// value of 0 disables the limit.
func MaxInputSize(n int) Option {
	return func(p *Parser) error {
		if n < 0 {
			return fmt.Errorf("max input size must be >= 0 but is %d", n)
		}
		p.maxInputSize = n
		return nil
	}
}

// Filename sets the filename reported in node and error positions.
func Filename(name string) Option {
	return func(p *Parser) error {
		p.filename = name
		return nil
	}
}
