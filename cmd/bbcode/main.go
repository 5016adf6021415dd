package main

import (
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/bbcode-go/bbcode"
)

var cli struct {
	MaxDepth     int    `help:"Maximum tag nesting depth (0 disables)." default:"${maxDepth}"`
	MaxTags      int    `help:"Maximum number of tags (0 disables)."`
	MaxInputSize int    `help:"Maximum input size in bytes (0 disables)."`
	Trace        bool   `help:"Trace the parse to stderr."`
	Source       bool   `help:"Print the canonical source instead of the tree."`
	File         string `arg:"" optional:"" type:"existingfile" help:"File to parse (defaults to stdin)."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Parse BBCode markup and dump the resulting tree.`),
		kong.Vars{"maxDepth": strconv.Itoa(bbcode.DefaultMaxDepth)},
	)

	options := []bbcode.Option{
		bbcode.MaxDepth(cli.MaxDepth),
		bbcode.MaxTags(cli.MaxTags),
		bbcode.MaxInputSize(cli.MaxInputSize),
	}
	if cli.Trace {
		options = append(options, bbcode.Trace(os.Stderr))
	}

	input := os.Stdin
	if cli.File != "" {
		options = append(options, bbcode.Filename(cli.File))
		f, err := os.Open(cli.File)
		kctx.FatalIfErrorf(err)
		defer f.Close()
		input = f
	}

	parser, err := bbcode.New(options...)
	kctx.FatalIfErrorf(err)

	doc, err := parser.Parse(input)
	kctx.FatalIfErrorf(err)

	if cli.Source {
		os.Stdout.WriteString(doc.String() + "\n")
		return
	}
	repr.New(os.Stdout, repr.Indent("  "), repr.OmitEmpty(true)).Println(doc)
}
