package warehouse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	text := `-- create the landing schema
CREATE SCHEMA IF NOT EXISTS RAW;

CREATE TABLE RAW.CUSTOMERS (
    CUSTOMER_ID NUMBER,
    -- free text below
    FIRST_NAME VARCHAR(100)
);

`
	stmts := SplitStatements(text)
	require.Len(t, stmts, 2)
	require.Equal(t, "CREATE SCHEMA IF NOT EXISTS RAW", stmts[0])
	require.Contains(t, stmts[1], "CREATE TABLE RAW.CUSTOMERS")
	require.NotContains(t, stmts[1], "free text")
}

func TestSplitStatementsEmpty(t *testing.T) {
	require.Empty(t, SplitStatements(""))
	require.Empty(t, SplitStatements("-- only a comment\n\n;"))
}

func TestSplitStatementsNoTrailingSemicolon(t *testing.T) {
	stmts := SplitStatements("SELECT 1;\nSELECT 2")
	require.Equal(t, []string{"SELECT 1", "SELECT 2"}, stmts)
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Account:   "xy12345",
		User:      "loader",
		Password:  "s3cret",
		Role:      "SYSADMIN",
		Warehouse: "COMPUTE_WH",
		Database:  "DM_DEMO",
		Schema:    "RAW",
	}
	dsn := cfg.DSN()
	require.Contains(t, dsn, "loader:s3cret@xy12345/DM_DEMO/RAW")
	require.Contains(t, dsn, "role=SYSADMIN")
	require.Contains(t, dsn, "warehouse=COMPUTE_WH")

	cfg.Password = ""
	cfg.Authenticator = "externalbrowser"
	dsn = cfg.DSN()
	require.Contains(t, dsn, "loader@xy12345/DM_DEMO/RAW")
	require.Contains(t, dsn, "authenticator=externalbrowser")
}
