package inject

import (
	"regexp"
	"strings"
)

// blockPattern matches one region. Both the directive and the body are
// non-greedy, so an opening marker always pairs with the nearest closing
// marker that follows it. Marker line breaks may be LF or CRLF.
var blockPattern = regexp.MustCompile(
	`(?s)(<!--\s*INJECT:\s*(.*?)\s*-->\r?\n)(.*?)(\r?\n<!--\s*/INJECT\s*-->)`,
)

// Block is one located region of a document.
type Block struct {
	// Opening is the opening marker text including its
	// trailing line break.
	Opening string

	// Directive is the payload captured from the opening
	// marker, without surrounding white space.
	Directive string

	// Body is the current interior of the region.
	Body string

	// Closing is the closing marker text including its
	// leading line break.
	Closing string

	// Start and End are the byte offsets of the whole
	// region in the document.
	Start int
	End   int

	// Line is the 1-based line of the opening marker.
	Line int
}

// Locate returns the regions of doc in document order. An
// opening marker without a closing marker yields no block.
func Locate(doc string) []Block {
	matches := blockPattern.FindAllStringSubmatchIndex(doc, -1)
	if len(matches) == 0 {
		return nil
	}

	blocks := make([]Block, 0, len(matches))
	line, counted := 1, 0

	for _, mm := range matches {
		line += strings.Count(doc[counted:mm[0]], "\n")
		counted = mm[0]

		blocks = append(blocks, Block{
			Opening:   doc[mm[2]:mm[3]],
			Directive: doc[mm[4]:mm[5]],
			Body:      doc[mm[6]:mm[7]],
			Closing:   doc[mm[8]:mm[9]],
			Start:     mm[0],
			End:       mm[1],
			Line:      line,
		})
	}

	return blocks
}
