package kdl

import (
	"fmt"
	"strings"

	apperrors "github.com/lcault/zjthemes/pkg/errors"
)

// Parse reads a KDL document covering the subset Zellij files use: nodes with
// scalar arguments, `{}` child blocks, line and block comments, quoted strings
// with escapes, and `;` or newline as node terminators. Malformed input yields
// a ParseError, never a panic.
func Parse(src string) (*Document, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	nodes, err := p.parseNodes(true)
	if err != nil {
		return nil, err
	}

	doc := &Document{src: src, hadFinalNewline: strings.HasSuffix(src, "\n")}

	prev := 0
	for i := range nodes {
		node := &nodes[i]
		if node.startOff > prev {
			doc.segments = append(doc.segments, &segment{startOff: prev, endOff: node.startOff})
		}
		doc.segments = append(doc.segments, &segment{node: node, startOff: node.startOff, endOff: node.endOff})
		prev = node.endOff
	}
	if prev < len(src) {
		doc.segments = append(doc.segments, &segment{startOff: prev, endOff: len(src)})
	}

	return doc, nil
}

type tokenKind int

const (
	tokWord tokenKind = iota
	tokLBrace
	tokRBrace
	tokTerm
	tokEOF
)

type token struct {
	kind  tokenKind
	text  string // decoded value for words
	raw   string // source bytes, quotes and escapes included
	line  int
	start int // byte offsets into the source
	end   int
}

func parseError(line int, format string, args ...any) error {
	return apperrors.NewParseError("", line, fmt.Errorf(format, args...))
}

func lex(src string) ([]token, error) {
	var tokens []token
	line := 1
	i := 0

	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '\n':
			tokens = append(tokens, token{kind: tokTerm, line: line, start: i, end: i + 1})
			line++
			i++
		case c == ';':
			tokens = append(tokens, token{kind: tokTerm, line: line, start: i, end: i + 1})
			i++
		case c == '{':
			tokens = append(tokens, token{kind: tokLBrace, line: line, start: i, end: i + 1})
			i++
		case c == '}':
			tokens = append(tokens, token{kind: tokRBrace, line: line, start: i, end: i + 1})
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return nil, parseError(line, "unterminated block comment")
			}
			line += strings.Count(src[i:i+2+end+2], "\n")
			i += 2 + end + 2
		case c == '"':
			text, width, err := lexString(src[i:], line)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokWord, text: text, raw: src[i : i+width], line: line, start: i, end: i + width})
			i += width
		default:
			j := i
			for j < len(src) && !isDelimiter(src[j]) {
				j++
			}
			tokens = append(tokens, token{kind: tokWord, text: src[i:j], raw: src[i:j], line: line, start: i, end: j})
			i = j
		}
	}

	tokens = append(tokens, token{kind: tokEOF, line: line, start: len(src), end: len(src)})
	return tokens, nil
}

// lexString decodes a quoted string starting at src[0] == '"', returning the
// decoded text and the number of source bytes consumed.
func lexString(src string, line int) (string, int, error) {
	var b strings.Builder
	i := 1
	for i < len(src) {
		c := src[i]
		switch c {
		case '"':
			return b.String(), i + 1, nil
		case '\n':
			return "", 0, parseError(line, "unterminated string")
		case '\\':
			if i+1 >= len(src) {
				return "", 0, parseError(line, "unterminated string")
			}
			switch esc := src[i+1]; esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"', '\\', '/':
				b.WriteByte(esc)
			default:
				b.WriteByte(esc)
			}
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, parseError(line, "unterminated string")
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ';', '{', '}', '"':
		return true
	}
	return false
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) parseNodes(topLevel bool) ([]Node, error) {
	var nodes []Node
	for {
		for p.peek().kind == tokTerm {
			p.next()
		}

		switch t := p.peek(); t.kind {
		case tokEOF:
			if !topLevel {
				return nil, parseError(t.line, "unexpected end of document, missing '}'")
			}
			return nodes, nil
		case tokRBrace:
			if topLevel {
				return nil, parseError(t.line, "unexpected '}'")
			}
			return nodes, nil
		case tokLBrace:
			return nil, parseError(t.line, "unexpected '{'")
		}

		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, *node)
	}
}

func (p *parser) parseNode() (*Node, error) {
	nameTok := p.next()
	node := &Node{Name: nameTok.text, startOff: nameTok.start, endOff: nameTok.end}

	for {
		switch t := p.peek(); t.kind {
		case tokWord:
			p.next()
			node.Args = append(node.Args, t.text)
			node.rawArgs = append(node.rawArgs, t.raw)
			node.endOff = t.end
		case tokLBrace:
			p.next()
			children, err := p.parseNodes(false)
			if err != nil {
				return nil, err
			}
			closing := p.next() // parseNodes only returns on '}'
			node.Children = children
			node.endOff = closing.end
			return node, nil
		default:
			// Terminator, '}' or EOF ends the node; the caller handles them.
			return node, nil
		}
	}
}
