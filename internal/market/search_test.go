package market

import "testing"

func TestSearchShortQueryEmpty(t *testing.T) {
	ix := NewIndex(defaultCatalog)

	for _, q := range []string{"", "b", " x "} {
		if got := ix.Search(q, 0); len(got) != 0 {
			t.Fatalf("Search(%q) = %d results, want 0", q, len(got))
		}
	}
}

func TestSearchMatchesNameAndSymbol(t *testing.T) {
	ix := NewIndex(defaultCatalog)

	got := ix.Search("bt", 0)
	if len(got) != 1 || got[0].ID != "bitcoin" {
		t.Fatalf("Search(bt) = %+v, want bitcoin via symbol", got)
	}

	got = ix.Search("COIN", 0)
	if len(got) != 2 {
		t.Fatalf("Search(COIN) = %d results, want bitcoin and dogecoin", len(got))
	}
	if got[0].ID != "bitcoin" || got[1].ID != "dogecoin" {
		t.Fatalf("results not in catalog order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestSearchLimit(t *testing.T) {
	ix := NewIndex(defaultCatalog)

	all := ix.Search("co", 0)
	if len(all) != 2 {
		t.Fatalf("Search(co) = %d results, want 2", len(all))
	}

	capped := ix.Search("co", 1)
	if len(capped) != 1 {
		t.Fatalf("limited query = %d results, want 1", len(capped))
	}
	if capped[0] != all[0] {
		t.Fatalf("limit changed ordering: %+v", capped[0])
	}
}
