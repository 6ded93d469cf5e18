// Package otp issues and validates the one-time codes that gate delivery
// completion. Codes live in a CodeCache under a key derived from the
// assignment and expire on their own; validation consumes the code so it can
// never be replayed.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// CompletionCodeTTL is how long a completion code stays valid after being
// issued. A worker who misses the window requests a fresh code.
const CompletionCodeTTL = 2 * time.Minute

const codeSpace = 1000000

// Gateway issues and validates one-time completion codes on top of a
// CodeCache.
type Gateway struct {
	cache ports.CodeCache
}

// NewGateway creates a Gateway over the given cache.
func NewGateway(cache ports.CodeCache) (*Gateway, error) {
	if cache == nil {
		return nil, errs.NewValueIsRequiredError("cache")
	}
	return &Gateway{cache: cache}, nil
}

// Issue generates a fresh 6-digit code for the assignment, stores it with
// CompletionCodeTTL and returns it for dispatch to the recipient.
// Issuing again before expiry replaces the previous code.
func (g *Gateway) Issue(ctx context.Context, assignmentID kernel.UUID) (string, error) {
	if err := assignmentID.Validate(); err != nil {
		return "", err
	}

	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", fmt.Errorf("generate completion code: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := g.cache.Put(ctx, completionKey(assignmentID), code, CompletionCodeTTL); err != nil {
		return "", fmt.Errorf("store completion code: %w", err)
	}

	return code, nil
}

// Validate checks the supplied code against the cached one. A successful
// validation consumes the code. A mismatch, an expired code or a code that
// was never issued all yield an InvalidCodeError; a mismatch leaves the
// issued code in place until it expires.
func (g *Gateway) Validate(ctx context.Context, assignmentID kernel.UUID, code string) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	key := completionKey(assignmentID)
	ok, err := g.cache.CompareAndEvict(ctx, key, code)
	if err != nil {
		return fmt.Errorf("validate completion code: %w", err)
	}
	if !ok {
		return errs.NewInvalidCodeError(key)
	}

	return nil
}

// Invalidate discards any outstanding code for the assignment.
func (g *Gateway) Invalidate(ctx context.Context, assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	return g.cache.Evict(ctx, completionKey(assignmentID))
}

// completionKey derives the cache key for an assignment's completion code.
func completionKey(assignmentID kernel.UUID) string {
	return "completion-code:" + assignmentID.String()
}
