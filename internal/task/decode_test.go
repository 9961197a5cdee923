package task

import "testing"

func TestDecodeBatch_BareArray(t *testing.T) {
	data := []byte(`[
		{"id": 1, "title": "A", "due_date": "2026-03-15", "importance": 8, "estimated_hours": 2, "dependencies": []},
		{"id": 2, "title": "B", "dependencies": [1]}
	]`)

	batch, strategy, err := DecodeBatch(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strategy != "" {
		t.Errorf("expected no strategy token, got %q", strategy)
	}
	if len(batch) != 2 {
		t.Fatalf("expected 2 records, got %d", len(batch))
	}
	if !batch[0].HasID || batch[0].ID != 1 || batch[0].Title != "A" {
		t.Errorf("record 0 decoded wrong: %+v", batch[0])
	}
	if len(batch[1].Deps) != 1 || !batch[1].Deps[0].OK || batch[1].Deps[0].ID != 1 {
		t.Errorf("expected dep 1 decoded, got %+v", batch[1].Deps)
	}
}

func TestDecodeBatch_ObjectWithStrategy(t *testing.T) {
	data := []byte(`{"tasks": [{"title": "A"}], "strategy": "fastest_wins"}`)

	batch, strategy, err := DecodeBatch(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strategy != "fastest_wins" {
		t.Errorf("expected strategy token, got %q", strategy)
	}
	if len(batch) != 1 {
		t.Errorf("expected 1 record, got %d", len(batch))
	}
}

func TestDecodeBatch_WrongTypedFields(t *testing.T) {
	data := []byte(`[{
		"title": "Messy",
		"importance": "7",
		"estimated_hours": "lots",
		"dependencies": [1, "two", 3.5, 4]
	}]`)

	batch, _, err := DecodeBatch(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw := batch[0]

	// Numeric strings are accepted.
	if !raw.HasImportance || raw.Importance != 7 {
		t.Errorf("expected importance 7 from numeric string, got %+v", raw)
	}
	// Non-numeric text is preserved for the validator to warn about.
	if raw.HasHours || raw.BadHours != "lots" {
		t.Errorf("expected bad hours %q, got %+v", "lots", raw)
	}

	if len(raw.Deps) != 4 {
		t.Fatalf("expected 4 dep entries, got %d", len(raw.Deps))
	}
	wantOK := []bool{true, false, false, true}
	for i, ok := range wantOK {
		if raw.Deps[i].OK != ok {
			t.Errorf("dep %d: expected OK=%v, got %+v", i, ok, raw.Deps[i])
		}
	}
}

func TestDecodeBatch_RejectsNonBatchInput(t *testing.T) {
	for _, input := range []string{`"just a string"`, `{"strategy": "smart_balance"}`, `{invalid`} {
		if _, _, err := DecodeBatch([]byte(input)); err == nil {
			t.Errorf("expected error for input %s", input)
		}
	}
}
