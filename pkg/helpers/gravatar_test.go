package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	got := GravatarURL("ana@x.com")
	assert.Equal(t, "https://www.gravatar.com/avatar/f0f946a8af0b685a65c109d0f911768a?d=mm&r=pg&s=200", got)
}

func TestGravatarURL_NormalizesEmail(t *testing.T) {
	assert.Equal(t, GravatarURL("ana@x.com"), GravatarURL("  ANA@X.COM  "))
}
