package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placeholder-expander/expand"
)

const companyDoc = `
root: co-1
objects:
  - id: co-1
    type: Company
    fields: {name: BigMoney Inc.}
    one: {user: u-1}
    many: {clients: [cl-1, cl-2]}
  - id: u-1
    type: User
    fields: {email: a@b.com}
    one: {company: co-1}
  - id: cl-1
    type: Client
    fields: {number: 1001, money_field: 1234.5}
  - id: cl-2
    type: Client
    fields: {number: 1002, money_field: 45.67}
`

type result struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(strings.NewReader(stdin), &stdout, &stderr, args)

	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRender(t *testing.T) {
	data := writeFile(t, "doc.yaml", companyDoc)

	res := runCLI(t, "[name]: [clients][number] [/clients]<[user.email]>", "render", "--data", data)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "BigMoney Inc.: 1001 1002 <a@b.com>", res.stdout)
}

func TestRender_TemplateFileAndRoot(t *testing.T) {
	data := writeFile(t, "doc.yaml", companyDoc)
	tmpl := writeFile(t, "tmpl.txt", "Client [client.number] / [nothing]\n")

	res := runCLI(t, "", "render", tmpl, "--data", data, "--root", "cl-2")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "Client 1002 / UNKNOWN for Client: nothing\n", res.stdout)

	res = runCLI(t, "", "render", tmpl, "--data", data, "--root", "cl-9")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, `root "cl-9": no such object`)
}

func TestRender_Locale(t *testing.T) {
	data := writeFile(t, "doc.yaml", companyDoc)
	cfg := writeFile(t, "placeholder.yaml", "format:\n  locale: en\n  currency: USD\n  money_fields: [Client.money_field]\n")

	res := runCLI(t, "[clients.1.money_field]", "render", "--data", data, "--config", cfg)
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "$")
	assert.NotEqual(t, "1234.5", res.stdout)

	res = runCLI(t, "[clients.1.money_field]", "render", "--data", data, "--config", cfg, "--plain")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "1234.5", res.stdout)
}

func TestRender_DepthLimit(t *testing.T) {
	data := writeFile(t, "doc.yaml", companyDoc)

	res := runCLI(t, "[user.email]", "render", "--data", data, "--max-depth", "1")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "a@b.com", res.stdout)

	res = runCLI(t, "[user.company.name]", "render", "--data", data, "--max-depth", "1")
	require.ErrorIs(t, res.err, expand.ErrDepthExceeded)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "limit 1 reached at User: company.name")

	res = runCLI(t, "[user.company.name]", "render", "--data", data)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "BigMoney Inc.", res.stdout)
}

func TestRender_Errors(t *testing.T) {
	res := runCLI(t, "[name]", "render")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, `required flag(s) "data" not set`)

	res = runCLI(t, "[name]", "render", "--data", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "failed to read document")

	data := writeFile(t, "doc.yaml", companyDoc)
	res = runCLI(t, "[name]", "render", "--data", data, "--currency", "EURO")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "invalid configuration")
}

func TestRender_DebugLogging(t *testing.T) {
	data := writeFile(t, "doc.yaml", companyDoc)

	res := runCLI(t, "[nope]", "render", "--data", data, "--log-level", "debug", "--log-format", "json")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "UNKNOWN for Company: nope", res.stdout)
	assert.Contains(t, res.stderr, `"msg":"unresolved placeholder"`)
	assert.Contains(t, res.stderr, `"path":"nope"`)

	res = runCLI(t, "[nope]", "render", "--data", data)
	require.NoError(t, res.err)
	assert.Empty(t, res.stderr)

	res = runCLI(t, "[nope]", "render", "--data", data, "--log-level", "loud")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, `log.level "loud"`)
}

func TestLint(t *testing.T) {
	data := writeFile(t, "doc.yaml", companyDoc)

	res := runCLI(t, "[name] [clients][number][/clients]", "lint", "--data", data)
	require.NoError(t, res.err, res.stderr)
	assert.Empty(t, res.stdout)

	res = runCLI(t, "[nam] [clients][numbr][/clients] [/user]", "lint", "--data", data)
	require.Error(t, res.err)
	assert.Contains(t, res.stdout, `error: @0 Company nam: [LINT_UNKNOWN_FIELD] unknown field or relation "nam" (did you mean: name`)
	assert.Contains(t, res.stdout, "@15 Client numbr: [LINT_UNKNOWN_FIELD]")
	assert.Contains(t, res.stdout, "warning: @33 Company user: [LINT_STRAY_CLOSE]")
	assert.Contains(t, res.stderr, "template has 2 error(s)")
}

func TestLint_StructureOnly(t *testing.T) {
	res := runCLI(t, "[items][name]", "lint")
	require.NoError(t, res.err, res.stderr)
	assert.Empty(t, res.stdout)

	res = runCLI(t, "[a..b] [/items]", "lint")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "LINT_EMPTY_SEGMENT")
	assert.Contains(t, res.stdout, "LINT_STRAY_CLOSE")
}

func TestFields(t *testing.T) {
	res := runCLI(t, "", "fields", "placeholder-expander/billing")
	require.NoError(t, res.err, res.stderr)

	assert.Contains(t, res.stdout, "Client")
	assert.Contains(t, res.stdout, "(billing.Client, types.go:")
	assert.Contains(t, res.stdout, "[money_field]")
	assert.Contains(t, res.stdout, "[invoices]")
	assert.Contains(t, res.stdout, "many -> Invoice")
	assert.Contains(t, res.stdout, "Position")
	assert.NotContains(t, res.stdout, "secret_field")
}

func TestFields_Dump(t *testing.T) {
	res := runCLI(t, "", "fields", "--dump", "placeholder-expander/billing")
	require.NoError(t, res.err, res.stderr)

	assert.Contains(t, res.stdout, "analyze.SchemaInfo")
	assert.Contains(t, res.stdout, `TypeName: (string) (len=8) "Position"`)
}

func TestGen(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ph")

	res := runCLI(t, "", "gen", "--out", out, "--package", "ph", "placeholder-expander/billing")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stderr, "generated providers")

	data, err := os.ReadFile(filepath.Join(out, "line_item_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package ph\n")
	assert.Contains(t, string(data), `NewSchema("Position")`)

	res = runCLI(t, "", "gen", "--check", "--out", out, "--package", "ph", "placeholder-expander/billing")
	require.NoError(t, res.err, res.stderr)
	assert.Empty(t, res.stdout)

	require.NoError(t, os.Remove(filepath.Join(out, "user_gen.go")))

	res = runCLI(t, "", "gen", "--check", "--out", out, "--package", "ph", "placeholder-expander/billing")
	require.Error(t, res.err)
	assert.Equal(t, filepath.Join(out, "user_gen.go")+"\n", res.stdout)
	assert.Contains(t, res.stderr, "1 generated file(s) out of date")
}

func TestGen_CheckedInBilling(t *testing.T) {
	res := runCLI(t, "", "gen", "--check", "--out", filepath.Join("..", "..", "billing", "placeholders"),
		"placeholder-expander/billing")
	require.NoError(t, res.err, res.stdout)
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "", "version")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "placeholder "), res.stdout)
}
