package database_test

import (
	"strings"
	"testing"

	"order-management-service/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() database.Config {
	return database.Config{
		User:     "orders",
		Password: "p@ss word",
		Name:     "orders",
		Host:     "db",
		Port:     "5432",
		SSLMode:  "disable",
		TimeZone: "America/Sao_Paulo",
	}
}

func TestConfig_DSN(t *testing.T) {
	dsn := testConfig().DSN()
	assert.Contains(t, dsn, "host=db")
	assert.Contains(t, dsn, "dbname=orders")
	assert.True(t, strings.HasSuffix(dsn, "TimeZone=America/Sao_Paulo"))
}

func TestConfig_URLEscapesPassword(t *testing.T) {
	u := testConfig().URL()
	assert.Equal(t, "postgres://orders:p%40ss%20word@db:5432/orders?sslmode=disable", u)
}

func TestConfig_Validate(t *testing.T) {
	cfg := testConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Password = ""
	assert.EqualError(t, cfg.Validate(), "POSTGRES_PASSWORD environment variable not set")
}

func TestMigrationFiles_Ordered(t *testing.T) {
	files, err := database.MigrationFiles()
	require.NoError(t, err)
	require.Len(t, files, 10)

	var ups []string
	for _, f := range files {
		if strings.HasSuffix(f, ".up.sql") {
			ups = append(ups, f)
		}
	}
	assert.Equal(t, []string{
		"000001_create_clientes.up.sql",
		"000002_create_produtos.up.sql",
		"000003_create_pedidos.up.sql",
		"000004_create_item_do_pedido.up.sql",
		"000005_create_objetos.up.sql",
	}, ups)
}

func TestConnect_RejectsIncompleteConfig(t *testing.T) {
	_, err := database.Connect(database.Config{User: "x"}, nil)
	assert.Error(t, err)
}
