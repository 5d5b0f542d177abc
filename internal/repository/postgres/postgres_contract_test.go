package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-records-service/internal/repository/contract"
	"github.com/maxviazov/cricket-records-service/migrations"
)

var (
	db     *sql.DB
	pool   *pgxpool.Pool
	dsn    string
	skippy bool
)

func TestMain(m *testing.M) {
	if os.Getenv("CONTRACT_TESTS") != "1" {
		// allow skipping contract tests unless explicitly enabled
		skippy = true
		os.Exit(m.Run())
	}

	dsn = buildDSNFromEnv()
	if dsn == "" {
		fmt.Println("[contract] DATABASE_URL or APP_POSTGRES_* env not set; skipping")
		skippy = true
		os.Exit(m.Run())
	}

	ctx := context.Background()
	var err error
	pool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("[contract] pgxpool new error:", err)
		os.Exit(1)
	}
	db = stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		fmt.Println("[contract] db ping error:", err)
		os.Exit(1)
	}

	if _, err := migrations.Up(ctx, db, goose.DialectPostgres); err != nil {
		fmt.Println("[contract] goose up error:", err)
		os.Exit(1)
	}

	code := m.Run()
	db.Close()
	pool.Close()
	os.Exit(code)
}

func skipIfNeeded(t *testing.T) {
	if skippy {
		t.Skip("contract tests skipped; set CONTRACT_TESTS=1 and provide DB env")
	}
}

func buildDSNFromEnv() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	user := firstNonEmpty(os.Getenv("APP_POSTGRES_USER"), os.Getenv("POSTGRES_USER"))
	pass := firstNonEmpty(os.Getenv("APP_POSTGRES_PASSWORD"), os.Getenv("POSTGRES_PASSWORD"))
	host := firstNonEmpty(os.Getenv("APP_POSTGRES_HOST"), os.Getenv("POSTGRES_HOST"), "localhost")
	port := firstNonEmpty(os.Getenv("APP_POSTGRES_PORT"), os.Getenv("POSTGRES_PORT"), "5432")
	name := firstNonEmpty(os.Getenv("APP_POSTGRES_DB"), os.Getenv("POSTGRES_DB"))
	ssl := firstNonEmpty(os.Getenv("APP_POSTGRES_SSLMODE"), os.Getenv("POSTGRES_SSLMODE"), "disable")
	if user == "" || pass == "" || name == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, name, ssl)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncateAll(t *testing.T) {
	t.Helper()
	stmt := `TRUNCATE TABLE team_innings, partnerships, fielding_details, bowling_details,
		batting_details, match_teams, matches, players, teams, grounds, countries CASCADE`
	if _, err := db.Exec(stmt); err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
}

// makeStores is the factory every contract suite runs against.
func makeStores(t *testing.T) (contract.Stores, func()) {
	skipIfNeeded(t)
	truncateAll(t)
	if err := NewLoader(pool).Seed(context.Background(), contract.Fixture()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return contract.Stores{
		Source:     NewMatchSource(pool, zerolog.Nop()),
		Scorecards: NewScorecardRepository(pool),
		Reference:  NewReferenceRepository(pool),
		Pinger:     NewPinger(pool),
	}, func() { truncateAll(t) }
}

func TestMatchSource_PostgresContract(t *testing.T) {
	contract.RunMatchSourceContract(t, makeStores)
}

func TestScorecard_PostgresContract(t *testing.T) {
	contract.RunScorecardContract(t, makeStores)
}

func TestReference_PostgresContract(t *testing.T) {
	contract.RunReferenceContract(t, makeStores)
}

func TestPinger_PostgresContract(t *testing.T) {
	contract.RunPingerContract(t, makeStores)
}
