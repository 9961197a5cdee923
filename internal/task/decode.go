package task

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// DecodeBatch parses a raw JSON document into task records plus an optional
// strategy token. The document is either a bare array of tasks or an object
// with "tasks" and "strategy" keys. Field values with the wrong JSON type are
// preserved for the validator to warn about rather than rejected here.
func DecodeBatch(data []byte) ([]Raw, string, error) {
	if !gjson.ValidBytes(data) {
		return nil, "", fmt.Errorf("invalid JSON input")
	}

	doc := gjson.ParseBytes(data)
	var list gjson.Result
	var strategy string

	switch {
	case doc.IsArray():
		list = doc
	case doc.IsObject():
		list = doc.Get("tasks")
		strategy = doc.Get("strategy").String()
		if !list.IsArray() {
			return nil, "", fmt.Errorf(`expected a list of tasks or an object with a "tasks" key`)
		}
	default:
		return nil, "", fmt.Errorf(`expected a list of tasks or an object with a "tasks" key`)
	}

	var batch []Raw
	for _, item := range list.Array() {
		batch = append(batch, decodeRaw(item))
	}
	return batch, strategy, nil
}

func decodeRaw(v gjson.Result) Raw {
	var raw Raw

	if id := v.Get("id"); id.Exists() && id.Type == gjson.Number {
		raw.ID = int(id.Int())
		raw.HasID = true
	}

	raw.Title = strings.TrimSpace(v.Get("title").String())

	if due := v.Get("due_date"); due.Exists() && due.Type != gjson.Null {
		raw.DueDate = due.String()
	}

	raw.Importance, raw.HasImportance, raw.BadImportance = decodeInt(v.Get("importance"))
	raw.Hours, raw.HasHours, raw.BadHours = decodeInt(v.Get("estimated_hours"))

	if deps := v.Get("dependencies"); deps.Exists() && deps.Type != gjson.Null {
		if !deps.IsArray() {
			raw.BadDeps = deps.Raw
		} else {
			for _, d := range deps.Array() {
				entry := DepEntry{Text: depText(d)}
				if d.Type == gjson.Number && d.Num == float64(int(d.Num)) {
					entry.ID = int(d.Num)
					entry.OK = true
				}
				raw.Deps = append(raw.Deps, entry)
			}
		}
	}

	return raw
}

// decodeInt accepts JSON numbers and numeric strings; anything else present
// is reported back as bad input.
func decodeInt(v gjson.Result) (value int, present bool, bad string) {
	switch {
	case !v.Exists() || v.Type == gjson.Null:
		return 0, false, ""
	case v.Type == gjson.Number:
		return int(v.Int()), true, ""
	case v.Type == gjson.String:
		if n, err := strconv.Atoi(strings.TrimSpace(v.String())); err == nil {
			return n, true, ""
		}
		return 0, false, v.String()
	default:
		return 0, false, v.Raw
	}
}

func depText(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.String()
	}
	return v.Raw
}
