package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/c-e-daly/prophet-sub001/pkg/migrate"
)

func TestMigrationsDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir failed validation: %v", err)
	}
}

func TestOffersMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_offers.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no offers migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS offers",
		"FOREIGN KEY (program_id) REFERENCES programs(id) ON DELETE RESTRICT",
		"CHECK (offer_price_cents > 0)",
		"CHECK (cart_total_cents > 0)",
		"DROP TABLE IF EXISTS offers",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestNaturalKeyIndexesPresent(t *testing.T) {
	cases := map[string]string{
		"*_create_consumers.sql":     "idx_consumers_shop_email",
		"*_create_carts.sql":         "idx_carts_shop_token",
		"*_create_cart_items.sql":    "idx_cart_items_cart_variant",
		"*_create_discounts.sql":     "ux_discounts_offer",
		"*_create_outbox_events.sql": "ux_outbox_events_event_aggregate",
	}
	for pattern, index := range cases {
		matches, err := filepath.Glob(filepath.Join("migrations", pattern))
		if err != nil {
			t.Fatalf("glob %s: %v", pattern, err)
		}
		if len(matches) == 0 {
			t.Fatalf("no migration matching %s", pattern)
		}
		data, err := os.ReadFile(matches[0])
		if err != nil {
			t.Fatalf("read %s: %v", matches[0], err)
		}
		if !strings.Contains(string(data), index) {
			t.Errorf("%s missing unique index %s", matches[0], index)
		}
	}
}
