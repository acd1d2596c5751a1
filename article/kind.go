package article

import (
	"fmt"
	"strconv"
)

// A BlockKind is the kind of a whole paragraph.
type BlockKind uint8

const (
	KindParagraph BlockKind = iota
	Header3
	Header4
	Code
	Preformatted
	ListItem
	Quote
	Image
)

// An InlineKind is the kind of a markup span inside a paragraph.
// It shares every variant of BlockKind except Image, and adds Link.
type InlineKind uint8

const (
	InlineParagraph InlineKind = iota
	InlineHeader3
	InlineHeader4
	InlineCode
	InlinePreformatted
	InlineListItem
	InlineQuote
	Link
)

// The tokens used in the input file
const (
	tokenParagraph    = "P"
	tokenHeader3      = "H3"
	tokenHeader4      = "H4"
	tokenCode         = "CODE"
	tokenPreformatted = "PRE"
	tokenListItem     = "ULI"
	tokenQuote        = "BQ"
	tokenLink         = "A"
	tokenImage        = "IMG"
)

var blockTokens = []string{
	KindParagraph: tokenParagraph,
	Header3:       tokenHeader3,
	Header4:       tokenHeader4,
	Code:          tokenCode,
	Preformatted:  tokenPreformatted,
	ListItem:      tokenListItem,
	Quote:         tokenQuote,
	Image:         tokenImage,
}

var inlineTokens = []string{
	InlineParagraph:    tokenParagraph,
	InlineHeader3:      tokenHeader3,
	InlineHeader4:      tokenHeader4,
	InlineCode:         tokenCode,
	InlinePreformatted: tokenPreformatted,
	InlineListItem:     tokenListItem,
	InlineQuote:        tokenQuote,
	Link:               tokenLink,
}

// elementNames holds the HTML element of the kinds shared by blocks and inline markups.
// Image and Link are not simple elements and are handled by the renderer.
var elementNames = []string{
	KindParagraph: "p",
	Header3:       "h3",
	Header4:       "h4",
	Code:          "code",
	Preformatted:  "pre",
	ListItem:      "li",
	Quote:         "blockquote",
}

// String returns the input token for the kind.
func (k BlockKind) String() string {
	if int(k) < len(blockTokens) {
		return blockTokens[k]
	}
	return "BlockKind(" + strconv.Itoa(int(k)) + ")"
}

// UnmarshalText parses an input token.
// The token for links is recognised, but links can not be a paragraph kind.
func (k *BlockKind) UnmarshalText(text []byte) error {
	token := string(text)
	for i, t := range blockTokens {
		if t == token {
			*k = BlockKind(i)
			return nil
		}
	}
	if token == tokenLink {
		return fmt.Errorf("%w: %q as paragraph type", ErrUnsupportedKind, token)
	}
	return fmt.Errorf("%w: unknown paragraph type %q", ErrMalformedInput, token)
}

// String returns the input token for the kind.
func (k InlineKind) String() string {
	if int(k) < len(inlineTokens) {
		return inlineTokens[k]
	}
	return "InlineKind(" + strconv.Itoa(int(k)) + ")"
}

// UnmarshalText parses an input token.
// The token for images is recognised, but images can not be a markup kind.
func (k *InlineKind) UnmarshalText(text []byte) error {
	token := string(text)
	for i, t := range inlineTokens {
		if t == token {
			*k = InlineKind(i)
			return nil
		}
	}
	if token == tokenImage {
		return fmt.Errorf("%w: %q as markup type", ErrUnsupportedKind, token)
	}
	return fmt.Errorf("%w: unknown markup type %q", ErrMalformedInput, token)
}

// A Layout is a placement hint for a paragraph. It does not change the rendered output.
type Layout uint8

const (
	InsetCenter Layout = iota
)

const tokenInsetCenter = "INSET_CENTER"

func (l Layout) String() string {
	if l == InsetCenter {
		return tokenInsetCenter
	}
	return "Layout(" + strconv.Itoa(int(l)) + ")"
}

func (l *Layout) UnmarshalText(text []byte) error {
	if string(text) != tokenInsetCenter {
		return fmt.Errorf("%w: unknown layout %q", ErrMalformedInput, text)
	}
	*l = InsetCenter
	return nil
}
