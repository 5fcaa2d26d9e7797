package database

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, r io.ReadCloser) string {
	t.Helper()
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

// balanced reports whether every statement closes its parentheses and ends with a semicolon.
func balanced(sql string) bool {
	depth := 0
	for _, r := range sql {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0 && strings.HasSuffix(strings.TrimSpace(sql), ";")
}

func TestMigrationSource_UpAndDownInOrder(t *testing.T) {
	src, err := iofs.New(migrationFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	up := map[uint]string{}
	var versions []uint
	version, err := src.First()
	require.NoError(t, err)
	for {
		versions = append(versions, version)

		r, name, err := src.ReadUp(version)
		require.NoError(t, err, "up %d", version)
		sql := readMigration(t, r)
		assert.True(t, balanced(sql), "up %d (%s) is not well formed", version, name)
		assert.Contains(t, sql, "CREATE TABLE", "up %d", version)
		up[version] = sql

		r, name, err = src.ReadDown(version)
		require.NoError(t, err, "down %d", version)
		sql = readMigration(t, r)
		assert.True(t, balanced(sql), "down %d (%s) is not well formed", version, name)
		assert.Contains(t, sql, "DROP TABLE", "down %d", version)

		version, err = src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		require.NoError(t, err)
	}

	assert.Equal(t, []uint{1, 2, 3, 4, 5}, versions)

	assert.Contains(t, up[1], "CONSTRAINT clientes_cpf_key UNIQUE")
	assert.Contains(t, up[2], "CONSTRAINT produtos_descricao_key UNIQUE")
	assert.Contains(t, up[3], "REFERENCES clientes (id)")
	assert.Contains(t, up[3], "ON DELETE RESTRICT")
	assert.Contains(t, up[4], "REFERENCES pedidos (id)")
	assert.Contains(t, up[4], "REFERENCES produtos (id)")
	assert.Contains(t, up[4], "CHECK (qtdade > 0)")
}
