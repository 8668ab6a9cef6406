package setexpr

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types. One-char literal tokens use their rune value as type, so
// the parser can match them directly against characters.
const (
	tokEOF    = 0
	tokNum    = -2
	tokString = -3
	tokIdent  = -4
	tokEq     = -5 // ==
	tokSubs   = -6 // <=
	tokSups   = -7 // >=
)

// The tokens representing literal one-char lexemes
var literals = []string{"{", "}", "(", ")", ",", "=", "|", "&", "-", "^"}

// token is a scanned input token.
type token struct {
	typ    int
	lexeme string
	pos    int
}

func (t token) String() string {
	if t.typ == tokEOF {
		return "<eof>"
	}
	return fmt.Sprintf("'%s'", t.lexeme)
}

var lexerOnce sync.Once // monitors one-time lexer compilation
var lexer *lexmachine.Lexer
var lexerErr error

func initLexer() {
	lexerOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`==`), makeToken(tokEq))
		lexer.Add([]byte(`<=`), makeToken(tokSubs))
		lexer.Add([]byte(`>=`), makeToken(tokSups))
		lexer.Add([]byte(`\"[^"]*\"`), makeToken(tokString))
		lexer.Add([]byte(`\-?[0-9]+`), makeToken(tokNum))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(tokIdent))
		for _, lit := range literals {
			r := "\\" + lit
			lexer.Add([]byte(r), makeToken(int(lit[0])))
		}
		lexerErr = lexer.Compile()
	})
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{typ: typ, lexeme: string(m.Bytes), pos: m.TC}, nil
	}
}

// scan tokenizes the complete input, appending a trailing EOF token.
func scan(input string) ([]token, error) {
	initLexer()
	if lexerErr != nil {
		return nil, lexerErr
	}
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []token
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("unexpected input at position %d", ui.StartTC)
			}
			return nil, err
		}
		t := tok.(token)
		tracer().Debugf("token %d = %s", len(tokens), t)
		tokens = append(tokens, t)
	}
	tokens = append(tokens, token{typ: tokEOF, pos: len(input)})
	return tokens, nil
}
