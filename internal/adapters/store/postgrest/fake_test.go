package postgrest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const testAPIKey = "service-key"

type fakeRow struct {
	seq    int
	values map[string]string
}

// fakeTable serves a subset of PostgREST: eq/ilike/imatch filters, order, limit, offset and
// representation responses for writes.
type fakeTable struct {
	mu       sync.Mutex
	rows     []*fakeRow
	nextID   int
	requests []*http.Request
	failWith int
}

func newFakeTable(t *testing.T) (*fakeTable, *httptest.Server) {
	t.Helper()

	table := &fakeTable{nextID: 1}
	server := httptest.NewServer(http.HandlerFunc(table.serve))
	t.Cleanup(server.Close)
	return table, server
}

func (f *fakeTable) insert(values map[string]string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insertLocked(values)
}

func (f *fakeTable) insertLocked(values map[string]string) string {
	id := strconv.Itoa(f.nextID)
	row := &fakeRow{seq: f.nextID, values: map[string]string{"id": id}}
	for key, value := range values {
		row.values[key] = value
	}
	f.nextID++
	f.rows = append(f.rows, row)
	return id
}

func (f *fakeTable) recorded() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}

func (f *fakeTable) fail(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith = status
}

func (f *fakeTable) lookup(id string) (map[string]string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.values["id"] == id {
			return row.values, true
		}
	}
	return nil, false
}

func (f *fakeTable) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, r)

	if r.Header.Get("apikey") != testAPIKey || r.Header.Get("Authorization") != "Bearer "+testAPIKey {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid API key"})
		return
	}
	if f.failWith != 0 {
		writeJSON(w, f.failWith, map[string]string{"message": "upstream failure", "code": "XX000"})
		return
	}

	query := r.URL.Query()
	switch r.Method {
	case http.MethodGet:
		matched := f.filter(query)
		f.order(matched, query.Get("order"))
		writeJSON(w, http.StatusOK, page(matched, query))
	case http.MethodPost:
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		f.insertLocked(body)
		row := f.rows[len(f.rows)-1]
		writeJSON(w, http.StatusCreated, []map[string]any{numericID(row.values)})
	case http.MethodPatch:
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		matched := f.filter(query)
		out := make([]map[string]any, 0, len(matched))
		for _, row := range matched {
			for key, value := range body {
				row.values[key] = value
			}
			out = append(out, numericID(row.values))
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodDelete:
		matched := f.filter(query)
		out := make([]map[string]any, 0, len(matched))
		kept := f.rows[:0]
		for _, row := range f.rows {
			if containsRow(matched, row) {
				out = append(out, numericID(row.values))
				continue
			}
			kept = append(kept, row)
		}
		f.rows = kept
		writeJSON(w, http.StatusOK, out)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeTable) filter(query map[string][]string) []*fakeRow {
	matched := make([]*fakeRow, 0, len(f.rows))
	for _, row := range f.rows {
		if rowMatches(row, query) {
			matched = append(matched, row)
		}
	}
	return matched
}

func (f *fakeTable) order(rows []*fakeRow, order string) {
	switch order {
	case "created_at.desc,id.desc", "id.desc":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })
	case "date.desc,id.desc":
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].values["date"] != rows[j].values["date"] {
				return rows[i].values["date"] > rows[j].values["date"]
			}
			return rows[i].seq > rows[j].seq
		})
	}
}

func rowMatches(row *fakeRow, query map[string][]string) bool {
	for key, values := range query {
		switch key {
		case "select", "order", "limit", "offset":
			continue
		}
		for _, value := range values {
			op, operand, _ := strings.Cut(value, ".")
			switch op {
			case "eq":
				if row.values[key] != operand {
					return false
				}
			case "ilike":
				if !likePattern(operand).MatchString(row.values[key]) {
					return false
				}
			case "imatch":
				if !regexp.MustCompile("(?i)" + operand).MatchString(row.values[key]) {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}

func page(rows []*fakeRow, query map[string][]string) []map[string]any {
	offset := 0
	if values := query["offset"]; len(values) > 0 {
		offset, _ = strconv.Atoi(values[0])
	}
	limit := len(rows)
	if values := query["limit"]; len(values) > 0 {
		limit, _ = strconv.Atoi(values[0])
	}

	out := []map[string]any{}
	for i := offset; i < len(rows) && len(out) < limit; i++ {
		out = append(out, numericID(rows[i].values))
	}
	return out
}

// numericID mirrors an identity column, which PostgREST serializes as a JSON number.
func numericID(values map[string]string) map[string]any {
	out := make(map[string]any, len(values))
	for key, value := range values {
		out[key] = value
	}
	if id, err := strconv.Atoi(values["id"]); err == nil {
		out["id"] = id
	}
	return out
}

// likePattern compiles an ilike operand the way PostgREST and Postgres read it:
// every "*" becomes "%" first, then "\" escapes the next rune, "%" matches any run
// and "_" any single rune.
func likePattern(operand string) *regexp.Regexp {
	operand = strings.ReplaceAll(operand, "*", "%")

	var b strings.Builder
	b.WriteString("(?is)^")
	escaped := false
	for _, r := range operand {
		switch {
		case escaped:
			b.WriteString(regexp.QuoteMeta(string(r)))
			escaped = false
		case r == '\\':
			escaped = true
		case r == '%':
			b.WriteString(".*")
		case r == '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

func containsRow(rows []*fakeRow, target *fakeRow) bool {
	for _, row := range rows {
		if row == target {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
