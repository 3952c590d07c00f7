package pms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Login(t *testing.T) {
	var r Registry
	alice := r.Register("alice", "secret")
	r.Register("bob", "hunter2")

	got, ok := r.Login("alice", "secret")
	require.True(t, ok)
	assert.Same(t, alice, got)
	assert.NotNil(t, got.Portfolio)
	assert.Equal(t, 0, got.Portfolio.Len())
}

func TestRegistry_LoginFailuresAreIndistinguishable(t *testing.T) {
	var r Registry
	r.Register("alice", "secret")

	wrongPassword, ok1 := r.Login("alice", "Secret")
	unknownUser, ok2 := r.Login("carol", "secret")

	assert.False(t, ok1)
	assert.False(t, ok2)
	assert.Nil(t, wrongPassword)
	assert.Nil(t, unknownUser)
}

func TestRegistry_DuplicateUsernames(t *testing.T) {
	var r Registry
	first := r.Register("alice", "one")
	second := r.Register("alice", "two")

	assert.Equal(t, 2, r.Len())
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotSame(t, first.Portfolio, second.Portfolio)

	got, ok := r.Login("alice", "two")
	require.True(t, ok)
	assert.Same(t, second, got)

	// same credentials: the first registered wins.
	third := r.Register("alice", "one")
	got, ok = r.Login("alice", "one")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.NotSame(t, third, got)
}

func TestRegistry_PortfoliosAreIndependent(t *testing.T) {
	var r Registry
	a := r.Register("alice", "x")
	b := r.Register("bob", "x")
	a.Portfolio.Add(NewStock("ACME", 10, 5.0))

	assert.Equal(t, 1, a.Portfolio.Len())
	assert.Equal(t, 0, b.Portfolio.Len())
}

func TestAccount_Authenticate(t *testing.T) {
	var r Registry
	a := r.Register("alice", "")
	assert.True(t, a.Authenticate(""))
	assert.False(t, a.Authenticate(" "))
}
