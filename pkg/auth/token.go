package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// NewToken returns a fresh opaque session token. Tokens carry no claims;
// they are only meaningful through the store's auth mappings.
func NewToken() string {
	return uuid.NewString()
}

// ExtractTokenFromHeader извлекает токен из Authorization header
func ExtractTokenFromHeader(r *http.Request) (string, error) {
	hdr := r.Header.Get("Authorization")
	parts := strings.SplitN(hdr, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid Authorization header")
	}
	return parts[1], nil
}
