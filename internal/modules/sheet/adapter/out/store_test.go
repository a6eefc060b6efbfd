package out_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sheetoutadapter "healthlog/internal/modules/sheet/adapter/out"
	"healthlog/internal/modules/sheet/domain"
	sheetout "healthlog/internal/modules/sheet/port/out"
	"healthlog/internal/platform/clock"
	"healthlog/internal/platform/id"
)

type seqIDs struct{ n int }

func (s *seqIDs) New() string {
	s.n++
	return fmt.Sprintf("row-%d", s.n)
}

var _ id.Generator = (*seqIDs)(nil)

func openStores(t *testing.T) map[string]sheetout.RowStore {
	t.Helper()
	dir := t.TempDir()
	xlsx, err := sheetoutadapter.NewXLSXRowStore(filepath.Join(dir, "book", "records.xlsx"))
	if err != nil {
		t.Fatalf("new xlsx store: %v", err)
	}
	sqlite, err := sheetoutadapter.NewSQLiteRowStore(filepath.Join(dir, "db", "records.db"), clock.Fixed(time.Unix(0, 0)), &seqIDs{})
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	t.Cleanup(func() {
		_ = xlsx.Close()
		_ = sqlite.Close()
	})
	return map[string]sheetout.RowStore{"xlsx": xlsx, "sqlite": sqlite}
}

func TestRowStoresListEmptyBeforeFirstAppend(t *testing.T) {
	t.Parallel()
	for name, store := range openStores(t) {
		rows, err := store.List(context.Background())
		if err != nil {
			t.Fatalf("%s list: %v", name, err)
		}
		if rows == nil || len(rows) != 0 {
			t.Fatalf("%s: expected empty non-nil list, got %#v", name, rows)
		}
	}
}

func TestRowStoresKeepInsertionOrderAndValues(t *testing.T) {
	t.Parallel()
	first := domain.Row{
		"date":         "2024-03-05",
		"painLevel":    float64(3),
		"pillCount":    float64(1),
		"exerciseDone": "yes",
		"feelsHealthy": "no",
		"weather":      "rain",
		"activityNote": "walk",
		"notes":        "felt ok",
	}
	second := domain.Row{"date": "2024-03-04", "painLevel": float64(5), "mood": "grumpy"}

	for name, store := range openStores(t) {
		ctx := context.Background()
		if err := store.Append(ctx, first); err != nil {
			t.Fatalf("%s append first: %v", name, err)
		}
		if err := store.Append(ctx, second); err != nil {
			t.Fatalf("%s append second: %v", name, err)
		}
		rows, err := store.List(ctx)
		if err != nil {
			t.Fatalf("%s list: %v", name, err)
		}
		if len(rows) != 2 {
			t.Fatalf("%s: expected 2 rows, got %d", name, len(rows))
		}
		for key, want := range first {
			if got := rows[0][key]; got != want {
				t.Fatalf("%s first[%s] = %#v, want %#v", name, key, got, want)
			}
		}
		if rows[1]["date"] != "2024-03-04" || rows[1]["painLevel"] != float64(5) || rows[1]["mood"] != "grumpy" {
			t.Fatalf("%s: unexpected second row %#v", name, rows[1])
		}
	}
}

func TestXLSXRowStoreReopensExistingWorkbook(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "records.xlsx")
	store, err := sheetoutadapter.NewXLSXRowStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Append(context.Background(), domain.Row{"notes": "persisted"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	reopened, err := sheetoutadapter.NewXLSXRowStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	rows, err := reopened.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0]["notes"] != "persisted" {
		t.Fatalf("unexpected rows after reopen: %#v", rows)
	}
}
