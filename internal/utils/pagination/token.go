// Package pagination implements opaque cursor tokens for list endpoints.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/bankapp-se/bankapp_backend/internal/apperrors"
)

const tokenSeparator = "|"

// Cursor is the decoded position of the last item of a page. Listing resumes
// strictly after this position in (CreatedAt DESC, ID DESC) order.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// EncodeToken builds an opaque page token from a cursor position.
func EncodeToken(createdAt time.Time, id string) string {
	raw := createdAt.UTC().Format(time.RFC3339Nano) + tokenSeparator + id
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// DecodeToken parses a page token produced by EncodeToken.
// Returns apperrors.ErrValidation for malformed tokens so handlers can map
// them to a 400 rather than a 500.
func DecodeToken(token string) (Cursor, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid page token", apperrors.ErrValidation)
	}
	parts := strings.SplitN(string(raw), tokenSeparator, 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("%w: invalid page token", apperrors.ErrValidation)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid page token", apperrors.ErrValidation)
	}
	return Cursor{CreatedAt: createdAt, ID: parts[1]}, nil
}
