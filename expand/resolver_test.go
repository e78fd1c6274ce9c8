package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	f := newFixture(t)
	client := f.wrap(t, f.client)
	company := f.wrap(t, f.company)

	tests := []struct {
		name     string
		target   string
		path     string
		wantKind OutcomeKind
		wantPath string
	}{
		{"field", "client", "number", OutcomeValue, "number"},
		{"self prefix", "client", "client.number", OutcomeValue, "number"},
		{"self prefix once", "client", "client.client.number", OutcomeUnresolved, "client.number"},
		{"hidden field", "client", "secret_field", OutcomeUnresolved, "secret_field"},
		{"unknown head", "client", "nothing.name", OutcomeUnresolved, "nothing.name"},
		{"dots only", "client", "...", OutcomeUnresolved, "..."},
		{"single relation", "client", "company.name", OutcomeDelegate, "company.name"},
		{"collection", "company", "clients", OutcomeCollectionBlock, "clients"},
		{"indexed item", "company", "clients.2.number", OutcomeDelegate, "clients.2.number"},
		{"index only", "company", "clients.1", OutcomeValue, "clients.1"},
		{"index zero", "company", "clients.0.number", OutcomeEmptyRelation, "clients.0.number"},
		{"index out of range", "company", "clients.10.number", OutcomeEmptyRelation, "clients.10.number"},
		{"index overflow", "company", "clients.99999999999999999999.number", OutcomeEmptyRelation, "clients.99999999999999999999.number"},
		{"collection without index", "company", "clients.number", OutcomeUnresolved, "clients.number"},
		{"relation as field", "company", "user", OutcomeUnresolved, "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := client
			if tt.target == "company" {
				p = company
			}

			got := Resolve(p, tt.path)
			assert.Equal(t, tt.wantKind, got.Kind, got.Kind.String())
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}
}

func TestResolve_Delegate(t *testing.T) {
	f := newFixture(t)

	got := Resolve(f.wrap(t, f.company), "clients.2.number")
	require.Equal(t, OutcomeDelegate, got.Kind)
	assert.Equal(t, "number", got.Rest)
	require.NotNil(t, got.Target)

	n, _ := got.Target.Field("number")
	assert.Equal(t, 1002, n)

	got = Resolve(f.wrap(t, f.client), "client.company.user.email")
	require.Equal(t, OutcomeDelegate, got.Kind)
	assert.Equal(t, "Company", got.Target.TypeName())
	assert.Equal(t, "user.email", got.Rest)
}

func TestResolve_AbsentRelation(t *testing.T) {
	f := newFixture(t)
	f.client.Company = nil

	got := Resolve(f.wrap(t, f.client), "company.name")
	assert.Equal(t, OutcomeEmptyRelation, got.Kind)

	f.company.Clients = nil
	got = Resolve(f.wrap(t, f.company), "clients.1.number")
	assert.Equal(t, OutcomeEmptyRelation, got.Kind)

	got = Resolve(f.wrap(t, f.company), "clients")
	assert.Equal(t, OutcomeCollectionBlock, got.Kind)
	assert.Empty(t, got.Items)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "Unresolved", OutcomeUnresolved.String())
	assert.Equal(t, "EmptyRelation", OutcomeEmptyRelation.String())
	assert.Equal(t, "Delegate", OutcomeDelegate.String())
	assert.Equal(t, "CollectionBlock", OutcomeCollectionBlock.String())
	assert.Equal(t, "Value", OutcomeValue.String())
	assert.Equal(t, "OutcomeKind(9)", OutcomeKind(9).String())
}
