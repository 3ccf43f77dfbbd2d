package helpers

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"
)

// GravatarURL derives an avatar URL from an email address the way Gravatar
// specifies: md5 of the trimmed, lowercased address. Computable offline; the
// size/rating/default parameters match what the frontend expects.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	q := url.Values{}
	q.Set("s", "200")
	q.Set("r", "pg")
	q.Set("d", "mm")
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?" + q.Encode()
}
