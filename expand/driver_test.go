package expand

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placeholder-expander/billing"
)

func TestString_DirectLookup(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"no placeholder", "without placeholder", "without placeholder"},
		{"empty brackets", "[]", "[]"},
		{"empty", "", ""},
		{"newline", "\n", "\n"},
		{"field", "[number]", "1001"},
		{"field and newline", "[number]\n", "1001\n"},
		{"repeated", "[number]---[number]--[money_field]", "1001---1001--12.34"},
		{"hidden field", "[secret_field]", "UNKNOWN for Client: secret_field"},
		{"ignored field", "[currency]", "UNKNOWN for Client: currency"},
		{"unknown namespace", "[nothing.name]", "UNKNOWN for Client: nothing.name"},
		{"wrong namespace", "[company.this.are.too.much.namespaces]", "UNKNOWN for Company: this.are.too.much.namespaces"},
		{"wrong own namespace", "[this.are.too.much.namespaces]", "UNKNOWN for Client: this.are.too.much.namespaces"},
		{"dots only", "[...]", "UNKNOWN for Client: ..."},
		{"unknown", "[unknown]", "UNKNOWN for Client: unknown"},
		{"not a token", "[first name] [a-b]", "[first name] [a-b]"},
		{"unbalanced brackets", "[[number]]", "[1001]"},
		{"stray close tag", "[/clients]", "[/clients]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.expand(t, f.client, tt.tmpl))
		})
	}
}

func TestString_Namespaces(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"related field", "[company.name]", "BigMoney Inc."},
		{"related and own field", "[company.name] [number]", "BigMoney Inc. 1001"},
		{"self reference", "[client.number]", "1001"},
		{"self reference through relation", "[client.company.name] [client.number]", "BigMoney Inc. 1001"},
		{"multiple steps", "[company.user.email]", "a@b.com"},
		{"back to self type", "[company.user.company.name]", "BigMoney Inc."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.expand(t, f.client, tt.tmpl))
		})
	}
}

func TestString_EmptyValues(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		f := newFixture(t)
		company := &billing.Company{Clients: []*billing.Client{}}
		assert.Equal(t, "", f.expand(t, company, "[clients][number][/clients]"))
		assert.Equal(t, "a  b", f.expand(t, company, "a [clients][number][/clients] b"))
	})

	t.Run("absent group", func(t *testing.T) {
		f := newFixture(t)
		assert.Equal(t, "", f.expand(t, &billing.Company{}, "[clients][number][/clients]"))
	})

	t.Run("index out of range", func(t *testing.T) {
		f := newFixture(t)
		assert.Equal(t, "", f.expand(t, f.company, "[clients.10.number]"))
		assert.Equal(t, "", f.expand(t, f.company, "[clients.0.number]"))
	})

	t.Run("index only", func(t *testing.T) {
		f := newFixture(t)
		assert.Equal(t, "<>", f.expand(t, f.company, "<[clients.1]>"))
	})

	t.Run("nil field", func(t *testing.T) {
		f := newFixture(t)
		f.company.Name = nil
		assert.Equal(t, "", f.expand(t, f.client, "[company.name]"))
	})

	t.Run("nil relation", func(t *testing.T) {
		f := newFixture(t)
		f.client.Company = nil
		assert.Equal(t, "", f.expand(t, f.client, "[company.name]"))
		assert.Equal(t, "", f.expand(t, f.client, "[client.company.name]"))
	})
}

func TestString_Collections(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"escaped newline", `[clients][number]\n[/clients]`, `1001\n1002\n`},
		{"prefix text", "[clients]Test:[number][/clients]", "Test:1001Test:1002"},
		{"newline", "[clients][number]\n[/clients]", "1001\n1002\n"},
		{"unknown in body", "[clients][foo][/clients]", "UNKNOWN for Client: fooUNKNOWN for Client: foo"},
		{"single item", "[clients.1.number]", "1001"},
		{"second item", "[clients.2.number]", "1002"},
		{"missing close", "[clients][number]", "END MISSING FOR clientsUNKNOWN for Company: number"},
		{"text around", "<[clients]([number])[/clients]>", "<(1001)(1002)>"},
		{"two groups", "[clients][number][/clients]|[clients][money_field][/clients]", "10011002|12.3445.67"},
		{"relation inside body", "[clients][company.user.email];[/clients]", "a@b.com;a@b.com;"},
		{"nearest close", "[clients]a[/clients]b[/clients]", "aab[/clients]"},
		{"close of other group", "[clients][number][/client]", "END MISSING FOR clientsUNKNOWN for Company: number[/client]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.expand(t, f.company, tt.tmpl))
		})
	}
}

func TestString_NilItemsAreSkipped(t *testing.T) {
	f := newFixture(t)
	f.company.Clients = []*billing.Client{f.client, nil, f.client1}

	assert.Equal(t, "1001,1002,", f.expand(t, f.company, "[clients][number],[/clients]"))
	assert.Equal(t, "", f.expand(t, f.company, "[clients.2.number]"))
}

func TestString_SubstitutedTextIsNotRescanned(t *testing.T) {
	f := newFixture(t)
	name := "[name] [clients]"
	f.company.Name = &name

	assert.Equal(t, "[name] [clients]", f.expand(t, f.company, "[name]"))
	assert.Equal(t, "[name] [clients]/[name] [clients]/", f.expand(t, f.company, "[clients][company.name]/[/clients]"))
}

func TestString_Invoice(t *testing.T) {
	f := newFixture(t)
	notes := "thanks"
	inv := billing.Invoice{
		Number: "2024-001",
		Status: billing.StatusSent,
		Notes:  &notes,
		Client: f.client,
		Items: []billing.LineItem{
			{Name: "Apple", Quantity: 2, Price: 1.5},
			{Name: "Pear", Quantity: 1, Price: 0.25},
		},
	}

	tmpl := "Invoice [invoice.number] for client [client.number] ([status])\n" +
		"[items]- [quantity] x [name] @ [price]\n[/items]" +
		"Total: [total] for [item_count] items, [position.name]"

	want := "Invoice 2024-001 for client 1001 (sent)\n" +
		"- 2 x Apple @ 1.5\n- 1 x Pear @ 0.25\n" +
		"Total: 3.25 for 2 items, UNKNOWN for Invoice: position.name"

	assert.Equal(t, want, f.expand(t, inv, tmpl))
	assert.Equal(t, "Apple", f.expand(t, inv, "[items.1.position.name]"))
	assert.Equal(t, "UNKNOWN for Position: nopeUNKNOWN for Position: nope", f.expand(t, inv, "[items][nope][/items]"))
}

func TestString_Logging(t *testing.T) {
	f := newFixture(t)

	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 1})

	out := f.expand(t, f.company, "[foo] [clients]", WithLogger(logger))
	assert.Equal(t, "UNKNOWN for Company: foo END MISSING FOR clients", out)

	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "placeholder "), lines[0])
	assert.Contains(t, lines[0], "unresolved placeholder")
	assert.Contains(t, lines[0], "foo")
	assert.Contains(t, lines[1], "group end missing")
	assert.Contains(t, lines[1], "clients")
}
