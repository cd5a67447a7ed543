package markdown

import (
	"errors"
	"fmt"
)

// Errors returned by the conversion pipeline. Callers compare with errors.Is.
var (
	ErrUnbalancedDelimiter = errors.New("unbalanced inline delimiter")
	ErrInvalidQuote        = errors.New("quote line is missing the > marker")
	ErrMissingTitle        = errors.New("document does not start with a level 1 heading")
	ErrMissingValue        = errors.New("leaf node has no value")
	ErrMissingTag          = errors.New("parent node has no tag")
	ErrEmptyChildren       = errors.New("parent node has no children")
	ErrEmptyParagraph      = errors.New("paragraph has no content")
	ErrUnknownBlockKind    = errors.New("unknown block kind")
	ErrUnknownSpanKind     = errors.New("unknown span kind")
	ErrInvalidHeading      = errors.New("heading level must be between 1 and 6")
)

// BlockError reports which block of a document failed to translate
type BlockError struct {
	Index int
	Kind  BlockKind
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d (%s): %v", e.Index+1, e.Kind, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
