package pagination

import (
	"fmt"
	"net/url"
	"strings"
	"testing"
)

type testItem struct {
	ID   string
	Name string
}

func makeTestItems(count int) []testItem {
	items := make([]testItem, count)
	for i := range count {
		items[i] = testItem{
			ID:   fmt.Sprintf("item-%03d", i+1),
			Name: fmt.Sprintf("Item %03d", i+1),
		}
	}
	return items
}

func TestPaginateFirstPage(t *testing.T) {
	items := makeTestItems(30)

	result := Paginate(
		items,
		Cursor{},
		10,
		"quote",
		func(i testItem) string { return i.ID },
		"/quotes",
		nil,
	)

	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(result.Items))
	}
	if result.Total != 30 {
		t.Fatalf("expected total 30, got %d", result.Total)
	}
	if result.Items[0].ID != "item-001" {
		t.Fatalf("expected first item to be item-001, got %s", result.Items[0].ID)
	}
	if result.NextCursor == "" {
		t.Fatal("expected next cursor")
	}
	if result.PrevCursor != "" {
		t.Fatalf("expected no prev cursor, got %s", result.PrevCursor)
	}
}

func TestPaginateMiddlePage(t *testing.T) {
	items := makeTestItems(30)

	cursor := Cursor{Type: "quote", Value: "item-010"}
	result := Paginate(
		items,
		cursor,
		10,
		"quote",
		func(i testItem) string { return i.ID },
		"/quotes",
		nil,
	)

	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(result.Items))
	}
	if result.Items[0].ID != "item-011" {
		t.Fatalf("expected first item to be item-011, got %s", result.Items[0].ID)
	}
	if result.NextCursor == "" {
		t.Fatal("expected next cursor")
	}
	if result.PrevCursor == "" {
		t.Fatal("expected prev cursor")
	}
}

func TestPaginateLastPage(t *testing.T) {
	items := makeTestItems(30)

	cursor := Cursor{Type: "quote", Value: "item-020"}
	result := Paginate(
		items,
		cursor,
		10,
		"quote",
		func(i testItem) string { return i.ID },
		"/quotes",
		nil,
	)

	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(result.Items))
	}
	if result.Items[0].ID != "item-021" {
		t.Fatalf("expected first item to be item-021, got %s", result.Items[0].ID)
	}
	if result.NextCursor != "" {
		t.Fatalf("expected no next cursor, got %s", result.NextCursor)
	}
	if result.PrevCursor == "" {
		t.Fatal("expected prev cursor")
	}
}

func TestPaginateEmptyItems(t *testing.T) {
	var items []testItem

	result := Paginate(
		items,
		Cursor{},
		10,
		"quote",
		func(i testItem) string { return i.ID },
		"/quotes",
		nil,
	)

	if len(result.Items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(result.Items))
	}
	if result.Total != 0 {
		t.Fatalf("expected total 0, got %d", result.Total)
	}
	if result.NextCursor != "" || result.PrevCursor != "" {
		t.Fatal("expected no cursors")
	}
}

func TestPaginateWithQueryParams(t *testing.T) {
	items := makeTestItems(30)

	query := url.Values{}
	query.Set("status", "sent")

	result := Paginate(
		items,
		Cursor{},
		10,
		"quote",
		func(i testItem) string { return i.ID },
		"/quotes",
		query,
	)

	if result.LinkHeader == "" {
		t.Fatal("expected link header")
	}
	if !strings.Contains(result.LinkHeader, "status=sent") {
		t.Fatalf("expected status in link header, got %s", result.LinkHeader)
	}
	if !strings.Contains(result.LinkHeader, "limit=10") {
		t.Fatalf("expected limit in link header, got %s", result.LinkHeader)
	}
}

func TestPaginateCursorNotFound(t *testing.T) {
	items := makeTestItems(10)

	cursor := Cursor{Type: "quote", Value: "nonexistent"}
	result := Paginate(
		items,
		cursor,
		10,
		"quote",
		func(i testItem) string { return i.ID },
		"/quotes",
		nil,
	)

	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items when cursor not found (starts from beginning), got %d", len(result.Items))
	}
	if result.Items[0].ID != "item-001" {
		t.Fatalf("expected to start from beginning, got %s", result.Items[0].ID)
	}
}

func TestPaginatePrevCursorSecondPage(t *testing.T) {
	items := makeTestItems(30)

	cursor := Cursor{Type: "quote", Value: "item-010"}
	result := Paginate(
		items,
		cursor,
		10,
		"quote",
		func(i testItem) string { return i.ID },
		"/quotes",
		nil,
	)

	prevDecoded, err := DecodeCursor(result.PrevCursor)
	if err != nil {
		t.Fatalf("failed to decode prev cursor: %v", err)
	}
	// Going back from page 2 means an unanchored first page.
	if prevDecoded.Value != "" {
		t.Fatalf("expected empty prev cursor value, got %s", prevDecoded.Value)
	}
}

func TestPaginatePrevCursorThirdPage(t *testing.T) {
	items := makeTestItems(30)

	cursor := Cursor{Type: "quote", Value: "item-020"}
	result := Paginate(
		items,
		cursor,
		10,
		"quote",
		func(i testItem) string { return i.ID },
		"/quotes",
		nil,
	)

	prevDecoded, err := DecodeCursor(result.PrevCursor)
	if err != nil {
		t.Fatalf("failed to decode prev cursor: %v", err)
	}
	if prevDecoded.Value != "item-010" {
		t.Fatalf("expected prev cursor to point to item-010, got %s", prevDecoded.Value)
	}
}

func TestPaginateLimitLargerThanItems(t *testing.T) {
	items := makeTestItems(5)

	result := Paginate(
		items,
		Cursor{},
		20,
		"quote",
		func(i testItem) string { return i.ID },
		"/quotes",
		nil,
	)

	if len(result.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(result.Items))
	}
	if result.NextCursor != "" || result.PrevCursor != "" {
		t.Fatal("expected no cursors")
	}
}
