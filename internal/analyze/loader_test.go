package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placeholder-expander/billing"
	"placeholder-expander/provider"
)

const billingPkg = "placeholder-expander/billing"

func loadBilling(t *testing.T) *Analyzer {
	t.Helper()

	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(billingPkg)
	require.NoError(t, err)

	return analyzer
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	schemas, err := analyzer.LoadPackages(billingPkg)
	require.NoError(t, err)

	names := make([]string, 0, len(schemas))
	for _, s := range schemas {
		names = append(names, s.ID.Name)
	}

	// scope order is sorted by name; Status is not a struct
	assert.Equal(t, []string{"Client", "Company", "Invoice", "LineItem", "User"}, names)
}

func TestAnalyzer_ClientSchema(t *testing.T) {
	analyzer := loadBilling(t)

	client, err := analyzer.Schema(TypeID{PkgPath: billingPkg, Name: "Client"})
	require.NoError(t, err)

	assert.Equal(t, "Client", client.TypeName)
	assert.Equal(t, []string{"number", "money_field"}, client.FieldNames())
	assert.Equal(t, FieldInfo{Name: "money_field", GoName: "MoneyField", GoType: "float64"}, client.Fields[1])

	company, ok := client.Relation("company")
	require.True(t, ok)
	assert.Equal(t, provider.RelationOne, company.Kind)
	assert.Equal(t, TypeID{PkgPath: billingPkg, Name: "Company"}, company.Target)

	invoices, ok := client.Relation("invoices")
	require.True(t, ok)
	assert.Equal(t, provider.RelationMany, invoices.Kind)
	assert.Equal(t, "Invoice", invoices.Target.Name)

	_, ok = client.Relation("currency")
	assert.False(t, ok)

	assert.Contains(t, client.Pos.Filename, "types.go")
	assert.Positive(t, client.Pos.Line)
}

func TestAnalyzer_MethodsFromSource(t *testing.T) {
	analyzer := loadBilling(t)

	item, err := analyzer.Schema(TypeID{PkgPath: billingPkg, Name: "LineItem"})
	require.NoError(t, err)
	assert.Equal(t, "Position", item.TypeName)

	invoice, err := analyzer.Schema(TypeID{PkgPath: billingPkg, Name: "Invoice"})
	require.NoError(t, err)
	assert.Equal(t, []string{"number", "date", "status", "notes", "total", "item_count"}, invoice.FieldNames())
	assert.True(t, invoice.Fields[4].Computed)
	assert.Empty(t, invoice.Fields[4].GoName)
	assert.Equal(t, "time.Time", invoice.Fields[1].GoType)
	assert.Equal(t, "*string", invoice.Fields[3].GoType)
	assert.Equal(t, "billing.Status", invoice.Fields[2].GoType)
}

func TestAnalyzer_MatchesRegistry(t *testing.T) {
	analyzer := loadBilling(t)

	reg := provider.NewRegistry()
	require.NoError(t, reg.Register(billing.Company{}))

	for _, info := range analyzer.Schemas() {
		schema, ok := reg.Lookup(info.TypeName)
		require.True(t, ok, info.TypeName)

		assert.Equal(t, schema.Fields(), info.FieldNames(), info.TypeName)

		for _, rel := range schema.Relations() {
			got, ok := info.Relation(rel.Name)
			require.True(t, ok, rel.Name)
			assert.Equal(t, rel.Kind, got.Kind)
		}
	}
}

func TestAnalyzer_UnknownSchema(t *testing.T) {
	analyzer := loadBilling(t)

	_, err := analyzer.Schema(TypeID{PkgPath: billingPkg, Name: "Status"})
	assert.ErrorContains(t, err, "has no placeholder schema")
}

func TestAnalyzer_LoadError(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("placeholder-expander/does-not-exist")
	assert.Error(t, err)
}

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "placeholder-expander/billing.Client", TypeID{PkgPath: billingPkg, Name: "Client"}.String())
	assert.Equal(t, "Client", TypeID{Name: "Client"}.String())
	assert.True(t, TypeID{}.IsZero())
}

func TestAnalyzer_RelationShapes(t *testing.T) {
	analyzer := loadBilling(t)

	client, err := analyzer.Schema(TypeID{PkgPath: billingPkg, Name: "Client"})
	require.NoError(t, err)

	company, _ := client.Relation("company")
	assert.Equal(t, ElemPointer, company.Elem)
	assert.Equal(t, 1, company.Pointers)
	assert.Equal(t, "*billing.Company", company.GoType)

	invoices, _ := client.Relation("invoices")
	assert.Equal(t, ElemValue, invoices.Elem)
	assert.Zero(t, invoices.Pointers)
	assert.True(t, invoices.Slice)
	assert.Equal(t, "[]billing.Invoice", invoices.GoType)

	invoice, err := analyzer.Schema(TypeID{PkgPath: billingPkg, Name: "Invoice"})
	require.NoError(t, err)
	assert.True(t, invoice.FormatsFields)
	assert.False(t, client.FormatsFields)
}
