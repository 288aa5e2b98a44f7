package main

import (
	"fmt"
	"strconv"
)

type TokenKind int

const (
	TokEOF TokenKind = iota
	TokNumber
	TokIdent
	TokOperator
	TokLParen
	TokRParen
	TokComma
	TokSemicolon
	TokAssign
)

func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "EOF"
	case TokNumber:
		return "number"
	case TokIdent:
		return "identifier"
	case TokOperator:
		return "operator"
	case TokLParen:
		return "'('"
	case TokRParen:
		return "')'"
	case TokComma:
		return "','"
	case TokSemicolon:
		return "';'"
	case TokAssign:
		return "'='"
	default:
		return "unknown"
	}
}

type Token struct {
	Kind TokenKind
	Text string
	Num  float64
	Pos  int
}

type LexError struct {
	Pos  int
	Char rune
}

func (e LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Pos)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Tokenize splits a script into a flat token sequence terminated by an EOF
// token. It keeps no state between calls. Leading '-' is not folded into
// number literals; the parser handles unary minus.
func Tokenize(src string) ([]Token, error) {
	tokens := make([]Token, 0, 32)
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			if i < len(src) && src[i] == '.' {
				i++
				for i < len(src) && isDigit(src[i]) {
					i++
				}
			}
			text := src[start:i]
			num, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, LexError{Pos: start, Char: rune(src[start])}
			}
			tokens = append(tokens, Token{Kind: TokNumber, Text: text, Num: num, Pos: start})
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: TokIdent, Text: src[start:i], Pos: start})
		case c == '$':
			// constant sigil: "$PI" lexes as one identifier token
			start := i
			i++
			if i >= len(src) || !isIdentStart(src[i]) {
				return nil, LexError{Pos: start, Char: '$'}
			}
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: TokIdent, Text: src[start:i], Pos: start})
		case c == '(':
			tokens = append(tokens, Token{Kind: TokLParen, Text: "(", Pos: i})
			i++
		case c == ')':
			tokens = append(tokens, Token{Kind: TokRParen, Text: ")", Pos: i})
			i++
		case c == ',':
			tokens = append(tokens, Token{Kind: TokComma, Text: ",", Pos: i})
			i++
		case c == ';':
			tokens = append(tokens, Token{Kind: TokSemicolon, Text: ";", Pos: i})
			i++
		case c == '=':
			if i+1 < len(src) && src[i+1] == '=' {
				tokens = append(tokens, Token{Kind: TokOperator, Text: "==", Pos: i})
				i += 2
			} else {
				tokens = append(tokens, Token{Kind: TokAssign, Text: "=", Pos: i})
				i++
			}
		case c == '<' || c == '>':
			if i+1 < len(src) && src[i+1] == '=' {
				tokens = append(tokens, Token{Kind: TokOperator, Text: src[i : i+2], Pos: i})
				i += 2
			} else {
				tokens = append(tokens, Token{Kind: TokOperator, Text: string(c), Pos: i})
				i++
			}
		case c == '!':
			if i+1 < len(src) && src[i+1] == '=' {
				tokens = append(tokens, Token{Kind: TokOperator, Text: "!=", Pos: i})
				i += 2
			} else {
				return nil, LexError{Pos: i, Char: '!'}
			}
		case c == '&':
			if i+1 < len(src) && src[i+1] == '&' {
				tokens = append(tokens, Token{Kind: TokOperator, Text: "&&", Pos: i})
				i += 2
			} else {
				return nil, LexError{Pos: i, Char: '&'}
			}
		case c == '|':
			if i+1 < len(src) && src[i+1] == '|' {
				tokens = append(tokens, Token{Kind: TokOperator, Text: "||", Pos: i})
				i += 2
			} else {
				return nil, LexError{Pos: i, Char: '|'}
			}
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '%' || c == '^':
			tokens = append(tokens, Token{Kind: TokOperator, Text: string(c), Pos: i})
			i++
		default:
			return nil, LexError{Pos: i, Char: rune(c)}
		}
	}
	tokens = append(tokens, Token{Kind: TokEOF, Pos: len(src)})
	return tokens, nil
}
