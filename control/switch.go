package control

// Character classes returned by ClassifyChar.
const (
	CharSpace = iota
	CharDigit
	CharLetter
	CharOther
)

// ClassifyChar returns CharSpace for ' ', '\t' and '\n', CharDigit for '0'-'9',
// CharLetter for ASCII letters and CharOther for everything else, including
// negative bytes.
func ClassifyChar(c int8) int32 {
	switch ch := byte(c); {
	case ch == ' ', ch == '\t', ch == '\n':
		return CharSpace
	case '0' <= ch && ch <= '9':
		return CharDigit
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z':
		return CharLetter
	default:
		return CharOther
	}
}

// -----------------------------------------------------------------------------

// Token tags understood by ProcessTokens.
const (
	TokenNumber  = 'n'
	TokenChar    = 'c'
	TokenSpecial = 's'
)

// ProcessTokens maps a (tag, value) token to a score:
//
//	'n': 0 -> -1; 1, 2 -> value*10; > 100 -> 100; then as 'c'
//	'c': < 32 -> 0; then as 's'
//	's': value+50
//
// Any other tag yields -99. Arithmetic wraps.
func ProcessTokens(typ int8, value int32) int32 {
	switch byte(typ) {
	case TokenNumber:
		switch {
		case value == 0:
			return -1
		case value == 1, value == 2:
			return value * 10
		case value > 100:
			return 100
		}
		fallthrough
	case TokenChar:
		if value < 32 {
			return 0
		}
		fallthrough
	case TokenSpecial:
		return value + 50
	default:
		return -99
	}
}
