package main

import (
	"fmt"
	"strconv"
)

// TokenType is the type of token (operator, literal, punctuation).
type TokenType string

// Definition of token types
const (
	// Special tokens
	EOF = "EOF"

	// Literals
	INT = "INT" // 12345

	// Operators
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"

	LT     = "<"
	GT     = ">"
	EQ     = "=="
	NOT_EQ = "!="
	LE     = "<="
	GE     = ">="

	// Delimiters
	SEMICOLON = ";"
	LPAREN    = "("
	RPAREN    = ")"
)

// Token is one lexical unit of the source. Pos is the byte offset of the
// token's first character.
type Token struct {
	Type     TokenType
	Literal  string
	IntValue int64 // only meaningful when Type == INT
	Pos      int
}

// LexError reports a character the lexer cannot form a token from.
type LexError struct {
	Pos     int
	Literal string
	Reason  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("offset %d: %s %q", e.Pos, e.Reason, e.Literal)
}

// Tokenize scans the whole source up front and returns the token list,
// terminated by an EOF token. The parser walks this list with a cursor;
// tokens are never mutated after Tokenize returns.
func Tokenize(src string) ([]Token, error) {
	var tokens []Token
	pos := 0

	for pos < len(src) {
		c := src[pos]

		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			pos++
			continue
		}

		if c == '=' {
			if pos+1 < len(src) && src[pos+1] == '=' {
				tokens = append(tokens, Token{Type: EQ, Literal: "==", Pos: pos})
				pos += 2
				continue
			}
			// Bare '=' is not an operator in this language.
			return nil, &LexError{Pos: pos, Literal: "=", Reason: "unexpected character"}

		} else if c == '!' {
			if pos+1 < len(src) && src[pos+1] == '=' {
				tokens = append(tokens, Token{Type: NOT_EQ, Literal: "!=", Pos: pos})
				pos += 2
				continue
			}
			return nil, &LexError{Pos: pos, Literal: "!", Reason: "unexpected character"}

		} else if c == '<' {
			if pos+1 < len(src) && src[pos+1] == '=' {
				tokens = append(tokens, Token{Type: LE, Literal: "<=", Pos: pos})
				pos += 2
			} else {
				tokens = append(tokens, Token{Type: LT, Literal: "<", Pos: pos})
				pos++
			}

		} else if c == '>' {
			if pos+1 < len(src) && src[pos+1] == '=' {
				tokens = append(tokens, Token{Type: GE, Literal: ">=", Pos: pos})
				pos += 2
			} else {
				tokens = append(tokens, Token{Type: GT, Literal: ">", Pos: pos})
				pos++
			}

		} else if c == '+' {
			tokens = append(tokens, Token{Type: PLUS, Literal: "+", Pos: pos})
			pos++

		} else if c == '-' {
			tokens = append(tokens, Token{Type: MINUS, Literal: "-", Pos: pos})
			pos++

		} else if c == '*' {
			tokens = append(tokens, Token{Type: ASTERISK, Literal: "*", Pos: pos})
			pos++

		} else if c == '/' {
			tokens = append(tokens, Token{Type: SLASH, Literal: "/", Pos: pos})
			pos++

		} else if c == '(' {
			tokens = append(tokens, Token{Type: LPAREN, Literal: "(", Pos: pos})
			pos++

		} else if c == ')' {
			tokens = append(tokens, Token{Type: RPAREN, Literal: ")", Pos: pos})
			pos++

		} else if c == ';' {
			tokens = append(tokens, Token{Type: SEMICOLON, Literal: ";", Pos: pos})
			pos++

		} else if isDigit(c) {
			start := pos
			for pos < len(src) && isDigit(src[pos]) {
				pos++
			}
			lit := src[start:pos]
			val, err := strconv.ParseInt(lit, 10, 64)
			if err != nil {
				return nil, &LexError{Pos: start, Literal: lit, Reason: "integer literal out of range"}
			}
			tokens = append(tokens, Token{Type: INT, Literal: lit, IntValue: val, Pos: start})

		} else {
			return nil, &LexError{Pos: pos, Literal: string(c), Reason: "unexpected character"}
		}
	}

	tokens = append(tokens, Token{Type: EOF, Literal: "", Pos: len(src)})
	return tokens, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
