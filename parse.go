package main

import "fmt"

// NodeKind represents different types of AST nodes
type NodeKind string

const (
	NodeProgram NodeKind = "NodeProgram"
	NodeInteger NodeKind = "NodeInteger"
	NodeBinary  NodeKind = "NodeBinary"
	NodeUnary   NodeKind = "NodeUnary"
)

// ASTNode represents a node in the Abstract Syntax Tree
type ASTNode struct {
	Kind NodeKind
	// NodeInteger:
	Integer int64
	// NodeBinary, NodeUnary:
	Op       string // "+", "-", "==", ...
	Children []*ASTNode
}

// ParseError reports a token the parser did not expect.
type ParseError struct {
	Pos      int
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("offset %d: expected %s but reached end of input", e.Pos, e.Expected)
	}
	return fmt.Sprintf("offset %d: expected %s but got %q", e.Pos, e.Expected, e.Got)
}

type parser struct {
	tokens []Token
	cursor int
}

// Parse consumes a token list produced by Tokenize and returns the
// program node. Each child of the program node is one statement's
// expression, in source order.
func Parse(tokens []Token) (*ASTNode, error) {
	p := &parser{tokens: tokens}

	var stmts []*ASTNode
	for !p.atEOF() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if len(stmts) == 0 {
		return nil, &ParseError{Pos: p.current().Pos, Expected: "at least one statement"}
	}

	return &ASTNode{Kind: NodeProgram, Children: stmts}, nil
}

func (p *parser) current() Token {
	return p.tokens[p.cursor]
}

func (p *parser) atEOF() bool {
	return p.current().Type == EOF
}

// consume advances past the current token if it has the given type.
func (p *parser) consume(typ TokenType) bool {
	if p.current().Type != typ {
		return false
	}
	p.cursor++
	return true
}

func (p *parser) expect(typ TokenType) error {
	tok := p.current()
	if tok.Type != typ {
		return &ParseError{Pos: tok.Pos, Expected: fmt.Sprintf("%q", string(typ)), Got: tok.Literal}
	}
	p.cursor++
	return nil
}

func (p *parser) statement() (*ASTNode, error) {
	node, err := p.equality()
	if err != nil {
		return nil, err
	}
	if err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) equality() (*ASTNode, error) {
	node, err := p.relational()
	if err != nil {
		return nil, err
	}

	for {
		if p.consume(EQ) {
			right, err := p.relational()
			if err != nil {
				return nil, err
			}
			node = &ASTNode{Kind: NodeBinary, Op: "==", Children: []*ASTNode{node, right}}
		} else if p.consume(NOT_EQ) {
			right, err := p.relational()
			if err != nil {
				return nil, err
			}
			node = &ASTNode{Kind: NodeBinary, Op: "!=", Children: []*ASTNode{node, right}}
		} else {
			return node, nil
		}
	}
}

// relational normalizes ">" and ">=" into "<" and "<=" with swapped
// operands, so the code generator only handles the two less-than forms.
func (p *parser) relational() (*ASTNode, error) {
	node, err := p.additive()
	if err != nil {
		return nil, err
	}

	for {
		if p.consume(LT) {
			right, err := p.additive()
			if err != nil {
				return nil, err
			}
			node = &ASTNode{Kind: NodeBinary, Op: "<", Children: []*ASTNode{node, right}}
		} else if p.consume(LE) {
			right, err := p.additive()
			if err != nil {
				return nil, err
			}
			node = &ASTNode{Kind: NodeBinary, Op: "<=", Children: []*ASTNode{node, right}}
		} else if p.consume(GT) {
			right, err := p.additive()
			if err != nil {
				return nil, err
			}
			node = &ASTNode{Kind: NodeBinary, Op: "<", Children: []*ASTNode{right, node}}
		} else if p.consume(GE) {
			right, err := p.additive()
			if err != nil {
				return nil, err
			}
			node = &ASTNode{Kind: NodeBinary, Op: "<=", Children: []*ASTNode{right, node}}
		} else {
			return node, nil
		}
	}
}

func (p *parser) additive() (*ASTNode, error) {
	node, err := p.multiplicative()
	if err != nil {
		return nil, err
	}

	for {
		if p.consume(PLUS) {
			right, err := p.multiplicative()
			if err != nil {
				return nil, err
			}
			node = &ASTNode{Kind: NodeBinary, Op: "+", Children: []*ASTNode{node, right}}
		} else if p.consume(MINUS) {
			right, err := p.multiplicative()
			if err != nil {
				return nil, err
			}
			node = &ASTNode{Kind: NodeBinary, Op: "-", Children: []*ASTNode{node, right}}
		} else {
			return node, nil
		}
	}
}

func (p *parser) multiplicative() (*ASTNode, error) {
	node, err := p.unary()
	if err != nil {
		return nil, err
	}

	for {
		if p.consume(ASTERISK) {
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			node = &ASTNode{Kind: NodeBinary, Op: "*", Children: []*ASTNode{node, right}}
		} else if p.consume(SLASH) {
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			node = &ASTNode{Kind: NodeBinary, Op: "/", Children: []*ASTNode{node, right}}
		} else {
			return node, nil
		}
	}
}

func (p *parser) unary() (*ASTNode, error) {
	// Unary plus is a no-op passthrough.
	if p.consume(PLUS) {
		return p.unary()
	}

	if p.consume(MINUS) {
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ASTNode{Kind: NodeUnary, Op: "-", Children: []*ASTNode{operand}}, nil
	}

	return p.primary()
}

func (p *parser) primary() (*ASTNode, error) {
	if p.consume(LPAREN) {
		node, err := p.equality()
		if err != nil {
			return nil, err
		}
		if err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return node, nil
	}

	tok := p.current()
	if tok.Type != INT {
		return nil, &ParseError{Pos: tok.Pos, Expected: "integer literal or \"(\"", Got: tok.Literal}
	}
	p.cursor++
	return &ASTNode{Kind: NodeInteger, Integer: tok.IntValue}, nil
}
