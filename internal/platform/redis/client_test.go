package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyURL(t *testing.T) {
	client, err := New("")
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "not configured")
}

func TestNew_MalformedURL(t *testing.T) {
	client, err := New("not-a-redis-url")
	require.Error(t, err)
	assert.Nil(t, client)
}
