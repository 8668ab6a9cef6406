package setexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/isi-vista/immutable/iset"
)

// Eval scans, parses and evaluates a single statement:
//
//    stmt → ident '=' expr  |  expr
//
// The result is an *iset.Set, or a bool for comparison expressions. An
// assignment binds the resulting set in env and yields it.
func Eval(input string, env *Env) (interface{}, error) {
	tokens, err := scan(input)
	if err != nil {
		return nil, err
	}
	if env == nil {
		env = NewEnv()
	}
	p := &parser{tokens: tokens, env: env}
	result, err := p.stmt()
	if err != nil {
		tracer().Errorf("setexpr: %v", err)
		return nil, err
	}
	return result, nil
}

// parser is a recursive-descent parser and evaluator in one pass. The
// language is small enough that no separate AST pays off.
type parser struct {
	tokens []token
	pos    int
	env    *Env
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if t.typ != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(typ int, what string) (token, error) {
	t := p.peek()
	if t.typ != typ {
		return t, fmt.Errorf("expected %s, found %s", what, t)
	}
	return p.advance(), nil
}

func (p *parser) stmt() (interface{}, error) {
	// lookahead of 2 decides between assignment and plain expression
	if p.peek().typ == tokIdent && p.tokens[p.pos+1].typ == '=' {
		name := p.advance().lexeme
		p.advance() // '='
		result, err := p.expr()
		if err != nil {
			return nil, err
		}
		set, ok := result.(*iset.Set)
		if !ok {
			return nil, fmt.Errorf("cannot assign a %T to variable '%s'", result, name)
		}
		if _, err := p.expect(tokEOF, "end of input"); err != nil {
			return nil, err
		}
		p.env.Def(name, set)
		tracer().Debugf("defined %s = %v", name, set)
		return set, nil
	}
	result, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokEOF, "end of input"); err != nil {
		return nil, err
	}
	return result, nil
}

// expr → alg [ ('==' | '<=' | '>=') alg ]
func (p *parser) expr() (interface{}, error) {
	left, err := p.alg()
	if err != nil {
		return nil, err
	}
	op := p.peek().typ
	if op != tokEq && op != tokSubs && op != tokSups {
		return left, nil
	}
	p.advance()
	right, err := p.alg()
	if err != nil {
		return nil, err
	}
	switch op {
	case tokEq:
		return left.Equal(right), nil
	case tokSubs:
		return left.Subset(right), nil
	default:
		return left.Superset(right), nil
	}
}

// alg → term { ('|' | '-' | '^') term }
func (p *parser) alg() (*iset.Set, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().typ
		if op != '|' && op != '-' && op != '^' {
			return left, nil
		}
		p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		switch op {
		case '|':
			left = left.Union(right)
		case '-':
			left = left.Difference(right)
		default:
			left = left.SymmetricDifference(right)
		}
	}
}

// term → atom { '&' atom }
func (p *parser) term() (*iset.Set, error) {
	left, err := p.atom()
	if err != nil {
		return nil, err
	}
	for p.peek().typ == '&' {
		p.advance()
		right, err := p.atom()
		if err != nil {
			return nil, err
		}
		left = left.Intersection(right)
	}
	return left, nil
}

// atom → '{' [ literal { ',' literal } ] '}'  |  ident  |  '(' expr ')'
func (p *parser) atom() (*iset.Set, error) {
	switch t := p.peek(); t.typ {
	case '{':
		return p.setLiteral()
	case tokIdent:
		p.advance()
		set, ok := p.env.Resolve(t.lexeme)
		if !ok {
			return nil, fmt.Errorf("unknown variable '%s'", t.lexeme)
		}
		return set, nil
	case '(':
		p.advance()
		result, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(')', "')'"); err != nil {
			return nil, err
		}
		set, ok := result.(*iset.Set)
		if !ok {
			return nil, fmt.Errorf("parenthesized expression is a %T, not a set", result)
		}
		return set, nil
	default:
		return nil, fmt.Errorf("expected a set expression, found %s", t)
	}
}

func (p *parser) setLiteral() (*iset.Set, error) {
	if _, err := p.expect('{', "'{'"); err != nil {
		return nil, err
	}
	b := iset.NewBuilder()
	if p.peek().typ == '}' {
		p.advance()
		return b.Build(), nil
	}
	for {
		v, err := p.literal()
		if err != nil {
			return nil, err
		}
		b.Add(v)
		if p.peek().typ != ',' {
			break
		}
		p.advance()
	}
	if _, err := p.expect('}', "'}' or ','"); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// literal → NUM | STRING
func (p *parser) literal() (interface{}, error) {
	switch t := p.peek(); t.typ {
	case tokNum:
		p.advance()
		n, err := strconv.Atoi(t.lexeme)
		if err != nil {
			return nil, fmt.Errorf("malformed number %s", t)
		}
		return n, nil
	case tokString:
		p.advance()
		return strings.Trim(t.lexeme, `"`), nil
	default:
		return nil, fmt.Errorf("expected a number or string, found %s", t)
	}
}
