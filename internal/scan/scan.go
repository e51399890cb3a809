// Package scan turns a receipt image into a single candidate amount.
//
// The scanner is an external collaborator from the ledger's point of
// view: it either produces one positive amount or fails, and on failure
// the caller must not record anything and should offer a retry instead.
package scan

import (
	"context"
	"errors"
)

// Scanner extracts the payable total from a receipt image.
type Scanner interface {
	// ScanAmount returns the single amount read off the image. A result
	// that is zero, negative or absent is reported as ErrNoAmount.
	ScanAmount(ctx context.Context, image []byte) (float64, error)
}

// ErrNoAmount means the scanner found no confident positive amount.
var ErrNoAmount = errors.New("no amount detected")

// ErrBadImage means the bytes do not decode as a supported image.
var ErrBadImage = errors.New("unsupported or corrupt image")
