package models

import "testing"

func TestCatalogLookupCaseInsensitive(t *testing.T) {
	name, info, ok := DefaultServiceCatalog.Lookup("spa treatment")
	if !ok {
		t.Fatal("known service not found")
	}
	if name != "Spa Treatment" {
		t.Fatalf("canonical name = %q", name)
	}
	if info.Price != 120 {
		t.Fatalf("price = %d", info.Price)
	}

	if _, _, ok := DefaultServiceCatalog.Lookup("Skydiving"); ok {
		t.Fatal("unknown service should not be found")
	}
}

func TestPriceLabel(t *testing.T) {
	if got := (ServiceInfo{Price: 100}).PriceLabel(); got != "$100" {
		t.Fatalf("PriceLabel(100) = %q", got)
	}
	if got := (ServiceInfo{Price: 0}).PriceLabel(); got != "Free" {
		t.Fatalf("PriceLabel(0) = %q", got)
	}
}
