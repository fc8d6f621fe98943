package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 8080, addr.Port)
	assert.Equal(t, "localhost:8080", addr.String())
}

func TestNetAddress_SetEmptyHost(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set(":9090"))
	assert.Equal(t, "", addr.Host)
	assert.Equal(t, 9090, addr.Port)
}

func TestNetAddress_SetInvalid(t *testing.T) {
	var addr NetAddress

	assert.Error(t, addr.Set("no-port"))
	assert.Error(t, addr.Set("host:abc"))
}

func TestNetAddress_StringZeroValue(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}
