package exclusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIsExcluded(t *testing.T) {
	c := NewChecker([]string{" Gmail.com ", "", "example.org."}, zap.NewNop())

	assert.Equal(t, []string{"gmail.com", "example.org"}, c.Domains())
	assert.True(t, c.IsExcluded("someone@gmail.com"))
	assert.True(t, c.IsExcluded("someone@GMAIL.COM"))
	assert.True(t, c.IsExcluded("ops@mail.example.org"))
	assert.False(t, c.IsExcluded("ops@notexample.org"))
	assert.False(t, c.IsExcluded("ceo@acme.com"))
	assert.False(t, c.IsExcluded("no-at-sign"))
}

func TestEmptyChecker(t *testing.T) {
	c := NewChecker(nil, nil)
	assert.False(t, c.IsExcluded("a@gmail.com"))
	assert.Empty(t, c.Domains())
}
