package kicadsexp

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenLeftParen
	TokenRightParen
	TokenSymbol
	TokenString
)

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}

// Lexer tokenizes S-expressions from an io.Reader
type Lexer struct {
	reader *bufio.Reader
}

// NewLexer creates a new lexer
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// NextToken reads the next token from the input
func (l *Lexer) NextToken() (Token, error) {
	ch, err := l.skipNoise()
	if err != nil {
		if err == io.EOF {
			return Token{Type: TokenEOF}, nil
		}
		return Token{}, err
	}

	switch ch {
	case '(':
		return Token{Type: TokenLeftParen, Value: "("}, nil
	case ')':
		return Token{Type: TokenRightParen, Value: ")"}, nil
	case '"':
		return l.readString()
	default:
		l.reader.UnreadRune()
		return l.readSymbol()
	}
}

// skipNoise consumes whitespace and # comments, returning the first
// significant rune
func (l *Lexer) skipNoise() (rune, error) {
	for {
		ch, _, err := l.reader.ReadRune()
		if err != nil {
			return 0, err
		}
		if unicode.IsSpace(ch) {
			continue
		}
		if ch == '#' {
			for {
				c, _, err := l.reader.ReadRune()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}
		return ch, nil
	}
}

// readString reads a quoted string; the opening quote is already consumed
func (l *Lexer) readString() (Token, error) {
	var result []rune
	for {
		ch, _, err := l.reader.ReadRune()
		if err != nil {
			return Token{}, fmt.Errorf("unexpected EOF in string")
		}

		if ch == '"' {
			return Token{Type: TokenString, Value: string(result)}, nil
		}

		if ch == '\\' {
			next, _, err := l.reader.ReadRune()
			if err != nil {
				return Token{}, fmt.Errorf("unexpected EOF after backslash")
			}
			switch next {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case 'r':
				result = append(result, '\r')
			default:
				// Unknown escape - keep the literal rune
				result = append(result, next)
			}
			continue
		}

		result = append(result, ch)
	}
}

// readSymbol reads an unquoted symbol (identifier, number, etc.)
func (l *Lexer) readSymbol() (Token, error) {
	var result []rune
	for {
		ch, _, err := l.reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Token{}, err
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' {
			l.reader.UnreadRune()
			break
		}
		result = append(result, ch)
	}

	if len(result) == 0 {
		return Token{}, fmt.Errorf("empty symbol")
	}
	return Token{Type: TokenSymbol, Value: string(result)}, nil
}
