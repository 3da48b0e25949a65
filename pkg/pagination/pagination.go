// Package pagination implements the keyset cursor used by the company order
// feed. Pages walk (created_at, id) newest first, so a cursor pins the last
// row of the previous page and the next query resumes strictly after it even
// when two orders share a creation timestamp.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultLimit is the page size served when the client sends none.
	DefaultLimit = 25
	// MaxLimit caps a single page of the order feed.
	MaxLimit = 100

	cursorSeparator = "|"
)

// Params carries the client's paging inputs. Cursor is the opaque token from
// a previous page's next_cursor, empty on the first page.
type Params struct {
	Limit  int
	Cursor string
}

// PageSize clamps the requested limit into [1, MaxLimit], falling back to
// DefaultLimit when the client sent none.
func (p Params) PageSize() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}
	if p.Limit > MaxLimit {
		return MaxLimit
	}
	return p.Limit
}

// FetchLimit is PageSize plus one sentinel row. The extra row never reaches
// the client; its presence means another page exists.
func (p Params) FetchLimit() int {
	return p.PageSize() + 1
}

// Cursor is the decoded keyset position: the creation time and id of the
// last order on the previous page.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Encode serializes the cursor into the opaque token handed to clients.
func (c Cursor) Encode() string {
	payload := c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()
	return base64.URLEncoding.EncodeToString([]byte(payload))
}

// DecodeCursor parses a client-supplied token. An empty token means the
// first page and yields a nil cursor without error.
func DecodeCursor(token string) (*Cursor, error) {
	if strings.TrimSpace(token) == "" {
		return nil, nil
	}

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("decode cursor token: %w", err)
	}
	createdAtPart, idPart, ok := strings.Cut(string(raw), cursorSeparator)
	if !ok {
		return nil, fmt.Errorf("malformed cursor token")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, createdAtPart)
	if err != nil {
		return nil, fmt.Errorf("cursor created_at: %w", err)
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return nil, fmt.Errorf("cursor id: %w", err)
	}
	return &Cursor{CreatedAt: createdAt, ID: id}, nil
}
