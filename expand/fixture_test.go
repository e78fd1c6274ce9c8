package expand

import (
	"testing"

	"github.com/stretchr/testify/require"

	"placeholder-expander/billing"
	"placeholder-expander/provider"
)

// fixture is the company with one admin and two clients used across tests.
type fixture struct {
	reg     *provider.Registry
	user    *billing.User
	company *billing.Company
	client  *billing.Client
	client1 *billing.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		reg:     provider.NewRegistry(),
		user:    &billing.User{Email: "a@b.com"},
		client:  &billing.Client{Number: 1001, MoneyField: 12.34, SecretField: "top-secret"},
		client1: &billing.Client{Number: 1002, MoneyField: 45.67, SecretField: "little secret"},
	}
	f.company = billing.NewCompany("BigMoney Inc.", f.user, f.client, f.client1)

	require.NoError(t, f.reg.Register(billing.Company{}))

	return f
}

func (f *fixture) wrap(t *testing.T, v any) provider.Provider {
	t.Helper()

	p, err := f.reg.Wrap(v)
	require.NoError(t, err)

	return p
}

func (f *fixture) expand(t *testing.T, v any, tmpl string, opts ...Option) string {
	t.Helper()

	out, err := New(opts...).String(f.wrap(t, v), tmpl)
	require.NoError(t, err)

	return out
}
