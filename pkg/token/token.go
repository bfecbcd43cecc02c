// Package token defines the lexical tokens of the SimpleScript language.
package token

// Type identifies the kind of a lexical token.
type Type int

const (
	// Keywords
	TypeVar Type = iota // var

	// Identifiers
	TypeIdentifier // variable or function name

	// Punctuation
	TypeEquals    // =
	TypeSemicolon // ;
	TypeLeftParen // (
	TypeRightParen
	TypeComma // ,

	// Arithmetic operators
	TypeAdd      // +
	TypeSubtract // -
	TypeMultiply // *
	TypeDivide   // /

	// Literals
	TypeString  // "..."
	TypeNumber  // 123, 3.14, -0.5, .25
	TypeBoolean // true, false

	// Special
	TypeEOF // end of input
)

// Token is a single lexical unit. The payload fields are only meaningful for
// the matching token type: Name for identifiers, Str/Num/Bool for literals.
type Token struct {
	Type Type
	Name string  // identifier text
	Str  string  // string literal payload
	Num  float64 // number literal payload
	Bool bool    // boolean literal payload
}

// String returns a debug-friendly representation of the token type.
func (t Type) String() string {
	switch t {
	case TypeVar:
		return "var"
	case TypeIdentifier:
		return "identifier"
	case TypeEquals:
		return "'='"
	case TypeSemicolon:
		return "';'"
	case TypeLeftParen:
		return "'('"
	case TypeRightParen:
		return "')'"
	case TypeComma:
		return "','"
	case TypeAdd:
		return "'+'"
	case TypeSubtract:
		return "'-'"
	case TypeMultiply:
		return "'*'"
	case TypeDivide:
		return "'/'"
	case TypeString:
		return "string literal"
	case TypeNumber:
		return "number literal"
	case TypeBoolean:
		return "boolean literal"
	case TypeEOF:
		return "end of input"
	default:
		return "unknown"
	}
}

// String renders the token for error messages, including the payload for
// identifiers and literals.
func (t Token) String() string {
	switch t.Type {
	case TypeIdentifier:
		return "identifier '" + t.Name + "'"
	case TypeString:
		return "string literal \"" + t.Str + "\""
	default:
		return t.Type.String()
	}
}

// EOF is the stable end-of-input token.
var EOF = Token{Type: TypeEOF}

// Var returns the `var` keyword token.
func Var() Token { return Token{Type: TypeVar} }

// Identifier returns an identifier token carrying the given name.
func Identifier(name string) Token { return Token{Type: TypeIdentifier, Name: name} }

// StringLit returns a string literal token.
func StringLit(s string) Token { return Token{Type: TypeString, Str: s} }

// NumberLit returns a number literal token.
func NumberLit(n float64) Token { return Token{Type: TypeNumber, Num: n} }

// BooleanLit returns a boolean literal token.
func BooleanLit(b bool) Token { return Token{Type: TypeBoolean, Bool: b} }

// Punct returns a payload-free token of the given type.
func Punct(t Type) Token { return Token{Type: t} }
