package scan

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"golang.org/x/sync/semaphore"

	"portafoglio/internal/log"
)

// maxConcurrentScans bounds in-flight vision requests.
const maxConcurrentScans = 3

// Service wraps a Scanner with image validation, a concurrency bound and
// the zero-amount policy: anything that is not a confident positive
// amount comes back as ErrNoAmount so the caller records nothing.
type Service struct {
	scanner Scanner
	sem     *semaphore.Weighted
	timeout time.Duration
	logger  *log.Logger
}

func NewService(scanner Scanner, timeout time.Duration, logger *log.Logger) *Service {
	return &Service{
		scanner: scanner,
		sem:     semaphore.NewWeighted(maxConcurrentScans),
		timeout: timeout,
		logger:  logger.WithComponent(log.ComponentScan),
	}
}

// Scan extracts the payable total from a receipt image.
func (s *Service) Scan(ctx context.Context, img []byte) (float64, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return 0, fmt.Errorf("acquire scan slot: %w", err)
	}
	defer s.sem.Release(1)

	// Reject bytes that are not a decodable PNG/JPEG before spending a
	// vision request on them.
	if _, _, err := image.Decode(bytes.NewReader(img)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadImage, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	amount, err := s.scanner.ScanAmount(ctx, img)
	if err != nil {
		s.logger.WarnContext(ctx, "Receipt scan failed",
			log.FieldOperation, log.OpScan,
			log.FieldError, err)
		return 0, err
	}
	if amount <= 0 {
		s.logger.InfoContext(ctx, "Receipt scan found no amount",
			log.FieldOperation, log.OpScan)
		return 0, ErrNoAmount
	}

	s.logger.InfoContext(ctx, "Receipt scanned",
		log.FieldOperation, log.OpScan,
		log.FieldAmount, amount)
	return amount, nil
}
