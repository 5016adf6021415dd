// Package bbcode parses BBCode-style markup into a tree of nodes.
//
// The grammar it accepts is, in EBNF-ish form:
//
//     Document = Content* EOF .
//     Content  = TagBlock | EscapedBracket | Text .
//     TagBlock = "[" TagName ( "=" Attribute )? "]" Content* "[/" CloseTagName "]" .
//     TagName        = ( !( "=" | "]" | "/" | whitespace ) any )+ .
//     CloseTagName   = ( !( "]" | whitespace ) any )+ .
//     Attribute      = ( !"]" any )* .
//     EscapedBracket = "\\[" .
//     Text           = ( !"[" any )+ .
//
// Content is strict ordered choice: a tag block is attempted first, then an
// escaped bracket, then a run of text. Whitespace is skipped between the
// structural tokens of a tag block ("[ b = x ]" and "[/ b ]" are accepted)
// but never inside a name or attribute value. The whole input must be
// consumed; a stray "[" that cannot start a tag or escape fails the parse.
//
// Opening and closing names are scanned independently and are not required
// to match. Both are exposed on Tag so callers can apply their own policy:
//
//     doc, err := bbcode.ParseString("[b]hello[/b]")
//     if err != nil {
//         // err is a bbcode.Error carrying the failing position.
//     }
//     tag := doc.Nodes[0].(*bbcode.Tag)
//
// Attribute values are opaque: "[size=12]" yields a pointer to "12",
// "[size=]" a pointer to "", and "[size]" nil. Rendering, unescaping of
// "\[", and open/close name validation are all left to the consumer.
package bbcode
