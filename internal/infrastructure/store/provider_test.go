package store

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedKey(t *testing.T, role string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": role}).
		SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestProvider_PrivilegedFallsBackToStandard(t *testing.T) {
	log, _ := test.NewNullLogger()
	p := NewRESTProvider("http://store.local", "anon", "", RESTOptions{}, log)

	assert.Same(t, p.Standard(), p.Standard())
	assert.Same(t, p.Standard(), p.Privileged())
}

func TestProvider_PrivilegedUsesServiceKey(t *testing.T) {
	log, hook := test.NewNullLogger()
	serviceKey := signedKey(t, serviceRole)
	p := NewRESTProvider("http://store.local", "anon", serviceKey, RESTOptions{}, log)

	first, ok := p.Privileged().(*RESTClient)
	require.True(t, ok)
	assert.Equal(t, serviceKey, first.apiKey)
	assert.NotSame(t, first, p.Privileged())
	assert.NotSame(t, p.Standard(), first)
	assert.Empty(t, hook.AllEntries())
}

func TestProvider_WarnsOnNonServiceRole(t *testing.T) {
	log, hook := test.NewNullLogger()
	p := NewRESTProvider("http://store.local", "anon", signedKey(t, "anon"), RESTOptions{}, log)

	p.Privileged()
	p.Privileged()

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestProvider_InstrumentWrapsClients(t *testing.T) {
	log, _ := test.NewNullLogger()
	p := NewRESTProvider("http://store.local", "anon", "", RESTOptions{Instrument: true}, log)

	_, ok := p.Standard().(*instrumented)
	assert.True(t, ok)
}
