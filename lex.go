package rpn

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	// tokenNone is the zero value. The scanner never returns it.
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenSpace is a run of whitespace. The scanner never returns it.
	tokenSpace
	// tokenOp is a single operator rune.
	tokenOp
	// tokenNum is a run of word runes starting with a decimal digit.
	tokenNum
	// tokenIdent is a run of word runes starting with a letter or underscore.
	tokenIdent
	// tokenOther is a single rune that starts no other token.
	tokenOther
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenSpace:
		return "Space"
	case tokenOp:
		return "Op"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOther:
		return "Other"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "-+*/="

// Letters are the Unicode Alphabetic property: general letters, letter
// numbers, and Other_Alphabetic, which has no regexp class of its own and
// covers combining vowel signs and circled letters. Word runes are letters,
// numbers, and underscore.
var (
	letterClass = `\p{L}\p{Nl}` + rangeClass(unicode.Other_Alphabetic)
	wordClass   = letterClass + `\p{N}_`
)

// Rules are tried in order. Number and identifier tokens share the same run
// of word runes; only the first rune decides which one is scanned.
var postfixLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s\v\x{85}\p{Z}]+`},
	{Name: "Op", Pattern: `[-+*/=]`},
	{Name: "Number", Pattern: `[0-9][` + wordClass + `]*`},
	{Name: "Ident", Pattern: `[` + letterClass + `_][` + wordClass + `]*`},
	{Name: "Other", Pattern: `(?s:.)`},
})

// rangeClass formats a range table as the inside of a regexp character class.
func rangeClass(t *unicode.RangeTable) string {
	var b strings.Builder
	add := func(lo, hi, stride uint32) {
		if stride == 1 {
			b.WriteString(`\x{` + strconv.FormatUint(uint64(lo), 16) + `}-\x{` + strconv.FormatUint(uint64(hi), 16) + `}`)
			return
		}
		for r := lo; r <= hi; r += stride {
			b.WriteString(`\x{` + strconv.FormatUint(uint64(r), 16) + `}`)
		}
	}
	for _, r := range t.R16 {
		add(uint32(r.Lo), uint32(r.Hi), uint32(r.Stride))
	}
	for _, r := range t.R32 {
		add(r.Lo, r.Hi, r.Stride)
	}
	return b.String()
}

var tokenKinds = func() map[lexer.TokenType]tokenKind {
	sym := postfixLexer.Symbols()
	return map[lexer.TokenType]tokenKind{
		sym["EOF"]:        tokenEOF,
		sym["Whitespace"]: tokenSpace,
		sym["Op"]:         tokenOp,
		sym["Number"]:     tokenNum,
		sym["Ident"]:      tokenIdent,
		sym["Other"]:      tokenOther,
	}
}()

// scanner produces tokens on demand, so that errors from the parser and
// errors from the input text are reported in the order they occur.
type scanner struct {
	src string
	lex lexer.Lexer
	// off and col are the byte offset and rune column of the last token, so
	// that computing columns is linear over the whole input.
	off, col int
}

func lex(src string) (*scanner, error) {
	l, err := postfixLexer.LexString("", src)
	if err != nil {
		return nil, err
	}
	return &scanner{src: src, lex: l, col: 1}, nil
}

// next scans the next non-whitespace token. At the end of the input, the
// result is an EOF token.
func (s *scanner) next() (lexToken, error) {
	for {
		t, err := s.lex.Next()
		if err != nil {
			return lexToken{}, err
		}
		tok := lexToken{text: t.Value, pos: s.column(t.Pos.Offset)}
		if t.EOF() {
			tok.kind = tokenEOF
			return tok, nil
		}
		tok.kind = tokenKinds[t.Type]
		if tok.kind == tokenSpace {
			continue
		}
		return tok, nil
	}
}

// column converts a byte offset at or after the previous one to a 1-based
// rune column.
func (s *scanner) column(off int) int {
	if off > len(s.src) {
		off = len(s.src)
	}
	if off > s.off {
		s.col += utf8.RuneCountInString(s.src[s.off:off])
		s.off = off
	}
	return s.col
}
