package command

import (
	"context"
	"testing"

	"github.com/joestump/harnessd/internal/envelope"
)

func noopHandler(ctx context.Context, args map[string]any) envelope.Envelope {
	return envelope.Ok(map[string]any{}, nil)
}

func TestRegistryFindIsCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(Descriptor{Name: "window.list", Category: "window", Description: "List windows", Handler: noopHandler})

	if _, ok := r.Find("WINDOW.LIST"); !ok {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
}

func TestRegistryReRegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register(Descriptor{Name: "window.list", Category: "window", Description: "v1", Handler: noopHandler})
	r.Register(Descriptor{Name: "window.list", Category: "window", Description: "v2", Handler: noopHandler})

	d, _ := r.Find("window.list")
	if d.Description != "v2" {
		t.Fatalf("expected overwritten descriptor, got %q", d.Description)
	}
	if len(r.GetByCategory("window")) != 1 {
		t.Fatalf("expected category index to contain exactly one entry, got %d", len(r.GetByCategory("window")))
	}
}

func TestRegistryGetCategoriesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(Descriptor{Name: "window.list", Category: "window", Description: "d", Handler: noopHandler})
	r.Register(Descriptor{Name: "app.list", Category: "app", Description: "d", Handler: noopHandler})

	cats := r.GetCategories()
	if len(cats) != 2 || cats[0] != "app" || cats[1] != "window" {
		t.Fatalf("expected sorted [app window], got %v", cats)
	}
}

func TestRegistryGetByCategoryPreservesOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(Descriptor{Name: "window.b", Category: "window", Description: "d", Handler: noopHandler})
	r.Register(Descriptor{Name: "window.a", Category: "window", Description: "d", Handler: noopHandler})

	list := r.GetByCategory("window")
	if len(list) != 2 || list[0].Name != "window.b" || list[1].Name != "window.a" {
		t.Fatalf("expected registration order preserved, got %+v", list)
	}
}

func TestFormatCategoryListCountsReadsAndMutations(t *testing.T) {
	r := NewRegistry()
	r.Register(Descriptor{Name: "window.list", Category: "window", Description: "d", IsMutation: false, Handler: noopHandler})
	r.Register(Descriptor{Name: "window.close", Category: "window", Description: "d", IsMutation: true, Handler: noopHandler})

	text := r.FormatCategoryList()
	if text == "" {
		t.Fatal("expected non-empty category list text")
	}
	want := "2 commands in 1 categories:"
	if len(text) < len(want) || text[:len(want)] != want {
		t.Fatalf("unexpected header, got %q", text)
	}
}

func TestFormatCommandMiss(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.FormatCommand("nope.nope"); ok {
		t.Fatal("expected miss for unregistered command")
	}
}
