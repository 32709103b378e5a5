package compiler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/kws/compiler/ir"
)

const good = `definition f() {
entry(%c context):
	%x = i 1
	ret %x
}
`

const bad = `definition f() {
entry(%c context):
	%x = i 1
	ret %x
	%y = i 2
}

definition g() {
entry(%c context):
	%y = add.i %x, %x
}
`

func TestCheck(t *testing.T) {
	ctx := context.Background()

	u, err := Check(ctx, "good.kws", []byte(good), Options{})
	require.NoError(t, err)

	assert.Equal(t, "good.kws", u.Name)
	assert.Empty(t, u.Diags)
	require.Len(t, u.Factory.Funcs(), 1)
	assert.Equal(t, ir.OpRet, u.Factory.Funcs()[0].EntryBlock().Terminal().Op)

	u, err = Check(ctx, "bad.kws", []byte(bad), Options{})
	require.NoError(t, err)

	var msgs []string
	for _, d := range u.Diags {
		msgs = append(msgs, d.Message)
	}

	assert.Equal(t, []string{
		"“i” was called after terminal instruction.",
		"“add.i” was called with a value from another function.",
		"Block “entry” has no terminal instruction.",
	}, msgs)

	_, err = Check(ctx, "broken.kws", []byte("definition f( {\n"), Options{})
	assert.Error(t, err)
}

func TestCheckDefinition(t *testing.T) {
	text := "file main() {\nentry(%c context):\n\tret %c\n}\n"

	u, err := Check(context.Background(), "main.kws", []byte(text), Options{Definition: true})
	require.NoError(t, err)
	assert.Empty(t, u.Diags)

	u, err = Check(context.Background(), "main.kws", []byte(text), Options{})
	require.NoError(t, err)

	require.Len(t, u.Diags, 2)
	assert.Equal(t, "Entry block “entry” takes 0 parameters, but 1 are declared.", u.Diags[0].Message)
	assert.Equal(t, "Parameter 0 out of bounds for block “entry”.", u.Diags[1].Message)
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()

	names := []string{
		filepath.Join(dir, "b.kws"),
		filepath.Join(dir, "a.kws"),
		filepath.Join(dir, "c.kws"),
	}

	for i, text := range []string{bad, bad, good} {
		err := os.WriteFile(names[i], []byte(text), 0o644)
		require.NoError(t, err)
	}

	units, ds, err := CheckFiles(context.Background(), names, Options{Jobs: 2})
	require.NoError(t, err)

	require.Len(t, units, 3)

	for i, u := range units {
		assert.Equal(t, names[i], u.Name)
	}

	assert.Len(t, units[0].Diags, 3)
	assert.Empty(t, units[2].Diags)

	require.Len(t, ds, 6)

	for i := 1; i < len(ds); i++ {
		assert.False(t, ds[i].Location.Less(ds[i-1].Location), "%v after %v", ds[i], ds[i-1])
	}

	assert.Equal(t, names[1], ds[0].Location.File)

	_, _, err = CheckFiles(context.Background(), append(names, filepath.Join(dir, "missing.kws")), Options{})
	assert.Error(t, err)
}
