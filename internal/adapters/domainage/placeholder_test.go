package domainage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderAgeInDays(t *testing.T) {
	created := time.Now().AddDate(0, 0, -100)
	r := NewPlaceholderResolver(created)

	age, err := r.AgeInDays(context.Background(), "example.com")

	require.NoError(t, err)
	assert.Equal(t, 100, age)
}

func TestPlaceholderSameAgeForAllDomains(t *testing.T) {
	r := NewPlaceholderResolver(time.Now().AddDate(-1, 0, 0))
	ctx := context.Background()

	a, err := r.AgeInDays(ctx, "example.com")
	require.NoError(t, err)
	b, err := r.AgeInDays(ctx, "another.org")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
