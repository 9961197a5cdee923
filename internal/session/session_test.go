package session

import (
	"testing"
)

func TestSession_AddAssignsSequentialIDs(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	first, err := s.Add(Record{Title: "first"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := s.Add(Record{Title: "second"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestSession_ExplicitIDBumpsCounter(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := s.Add(Record{ID: 10, Title: "explicit"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	next, err := s.Add(Record{Title: "auto"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if next.ID != 11 {
		t.Errorf("expected auto id 11 after explicit 10, got %d", next.ID)
	}
}

func TestSession_PersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Add(Record{Title: "kept", Importance: 7, Hours: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	tasks := reopened.List()
	if len(tasks) != 1 || tasks[0].Title != "kept" || tasks[0].Importance != 7 {
		t.Errorf("expected the saved record back, got %+v", tasks)
	}
	if reopened.NextID != 2 {
		t.Errorf("expected counter 2 after reopen, got %d", reopened.NextID)
	}
}

func TestSession_ClearResetsCounter(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Add(Record{Title: "gone"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(s.List()) != 0 {
		t.Errorf("expected no tasks after clear")
	}

	fresh, err := s.Add(Record{Title: "restart"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if fresh.ID != 1 {
		t.Errorf("expected ids to restart at 1 after clear, got %d", fresh.ID)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.NextID != 2 || len(reopened.List()) != 1 {
		t.Errorf("clear not persisted: %+v", reopened)
	}
}

func TestRecord_RawConversion(t *testing.T) {
	rec := Record{ID: 3, Title: "convert", DueDate: "2026-04-01", Importance: 6, Hours: 4, Dependencies: []int{1, 2}}

	raw := rec.Raw()

	if !raw.HasID || raw.ID != 3 || raw.Title != "convert" {
		t.Errorf("identity fields lost: %+v", raw)
	}
	if !raw.HasImportance || !raw.HasHours {
		t.Errorf("saved records always carry their numeric fields: %+v", raw)
	}
	if len(raw.Deps) != 2 || !raw.Deps[0].OK || raw.Deps[1].ID != 2 {
		t.Errorf("dependencies lost in conversion: %+v", raw.Deps)
	}
}
