package expr

import (
	"math/big"
)

// parser is a recursive-descent evaluator over a token slice.
//
//	expr  := term (('+' | '-') term)*
//	term  := unary (('*' | '/') unary)*
//	unary := ('+' | '-') unary | power
//	power := atom ('**' unary)?
//	atom  := NUMBER | '(' expr ')'
type parser struct {
	tokens []token
	pos    int
	depth  int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) enter(pos int) error {
	p.depth++
	if p.depth > MaxDepth {
		return syntaxError(pos, "expression nested deeper than %d levels", MaxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) parseExpr() (*big.Rat, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.kind != tokPlus && op.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op.kind == tokPlus {
			left.Add(left, right)
		} else {
			left.Sub(left, right)
		}
		if err := checkSize(left, op.pos); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseTerm() (*big.Rat, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.kind != tokStar && op.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op.kind == tokStar {
			left.Mul(left, right)
		} else {
			if right.Sign() == 0 {
				return nil, syntaxError(op.pos, "division by zero")
			}
			left.Quo(left, right)
		}
		if err := checkSize(left, op.pos); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseUnary() (*big.Rat, error) {
	t := p.peek()
	if t.kind != tokPlus && t.kind != tokMinus {
		return p.parsePower()
	}
	if err := p.enter(t.pos); err != nil {
		return nil, err
	}
	defer p.leave()

	p.next()
	v, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if t.kind == tokMinus {
		v.Neg(v)
	}
	return v, nil
}

func (p *parser) parsePower() (*big.Rat, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	op := p.peek()
	if op.kind != tokPow {
		return base, nil
	}
	p.next()
	// right associative: 2**3**2 == 2**9, and 2**-1 is allowed
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return pow(base, exp, op.pos)
}

func (p *parser) parseAtom() (*big.Rat, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, ok := new(big.Rat).SetString(t.text)
		if !ok {
			return nil, syntaxError(t.pos, "bad integer literal %q", t.text)
		}
		if err := checkSize(v, t.pos); err != nil {
			return nil, err
		}
		return v, nil
	case tokLParen:
		if err := p.enter(t.pos); err != nil {
			return nil, err
		}
		defer p.leave()

		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, syntaxError(c.pos, "expected ')' but found %s", c.kind)
		}
		return v, nil
	default:
		return nil, syntaxError(t.pos, "expected number or '(' but found %s", t.kind)
	}
}

var (
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
)

// pow raises base to an integral exponent. Negative exponents give the
// reciprocal, so the result is only an integer for bases 1 and -1.
func pow(base, exp *big.Rat, pos int) (*big.Rat, error) {
	if !exp.IsInt() {
		return nil, syntaxError(pos, "exponent %s is not an integer", exp.RatString())
	}
	e := new(big.Int).Set(exp.Num())

	switch {
	case e.Sign() == 0:
		return new(big.Rat).SetInt64(1), nil
	case base.Sign() == 0:
		if e.Sign() < 0 {
			return nil, syntaxError(pos, "zero raised to a negative power")
		}
		return new(big.Rat), nil
	case base.Cmp(ratOne) == 0:
		return new(big.Rat).SetInt64(1), nil
	case base.Cmp(ratMinusOne) == 0:
		if e.Bit(0) == 0 {
			return new(big.Rat).SetInt64(1), nil
		}
		return new(big.Rat).SetInt64(-1), nil
	}

	negative := e.Sign() < 0
	e.Abs(e)
	bits := base.Num().BitLen()
	if d := base.Denom().BitLen(); d > bits {
		bits = d
	}
	if !e.IsInt64() || e.Int64() > int64(MaxBits) || int64(bits-1)*e.Int64() > int64(MaxBits) {
		return nil, syntaxError(pos, "result exceeds %d bits", MaxBits)
	}

	num := new(big.Int).Exp(base.Num(), e, nil)
	den := new(big.Int).Exp(base.Denom(), e, nil)
	if negative {
		num, den = den, num
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	v := new(big.Rat).SetFrac(num, den)
	if err := checkSize(v, pos); err != nil {
		return nil, err
	}
	return v, nil
}

func checkSize(v *big.Rat, pos int) error {
	if v.Num().BitLen() > MaxBits || v.Denom().BitLen() > MaxBits {
		return syntaxError(pos, "result exceeds %d bits", MaxBits)
	}
	return nil
}
