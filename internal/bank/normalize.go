package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBreak    = regexp.MustCompile(`(?i)<\s*br\s*/?>`)
	reParaEnd  = regexp.MustCompile(`(?i)</p\s*>`)
	reTag      = regexp.MustCompile(`<[^>]+>`)
	reNewlines = regexp.MustCompile(`\n{3,}`)
)

// ParseBank decodes an import file into normalized questions. The file is
// either a JSON array of records or newline-delimited JSON objects;
// malformed NDJSON lines are skipped.
func ParseBank(data []byte) (Bank, error) {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		records = parseLines(data)
	}
	if len(records) == 0 {
		return nil, errors.New("bank file holds no records: need a JSON array or JSON lines")
	}

	b := make(Bank, 0, len(records))
	for i, rec := range records {
		b = append(b, normalize(rec, i))
	}

	if err := ValidateBank(b); err != nil {
		return nil, fmt.Errorf("validate bank: %w", err)
	}
	return b, nil
}

// parseLines decodes newline-delimited JSON objects, skipping bad lines.
func parseLines(data []byte) []map[string]any {
	var records []map[string]any
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// normalize maps one loose import record to a Question. Field synonyms
// follow the formats the tool has historically accepted; pos is the
// zero-based record position used to invent an id when none is present.
func normalize(rec map[string]any, pos int) Question {
	id := firstString(rec, "qid", "id", "_id")
	if id == "" {
		id = strconv.Itoa(pos + 1)
	}

	stem := firstString(rec, "stem_text")
	if stem == "" {
		if h := firstString(rec, "stem_html"); h != "" {
			stem = StripHTML(h)
		}
	}
	if stem == "" {
		stem = firstString(rec, "stem", "question", "text")
	}

	options := stringSlice(rec["options"])
	if options == nil {
		options = stringSlice(rec["choices"])
	}

	var answer string
	if ai, ok := asInt(rec["answer_index"]); ok {
		answer = IndexToLetter(ai)
	} else {
		answer = strings.TrimSpace(firstString(rec, "answer", "correct", "key"))
	}

	return Question{
		ID:          id,
		Stem:        stem,
		Options:     options,
		Answer:      answer,
		Explanation: firstString(rec, "explanation", "analysis", "explain"),
		Category:    firstString(rec, "category", "type"),
	}
}

// StripHTML converts markup-bearing stems to plain text: <br> and </p>
// become newlines, remaining tags are dropped, runs of blank lines collapse.
func StripHTML(s string) string {
	s = reBreak.ReplaceAllString(s, "\n")
	s = reParaEnd.ReplaceAllString(s, "\n")
	s = reTag.ReplaceAllString(s, "")
	s = reNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// firstString returns the first present key coerced to a string.
func firstString(rec map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := coerceString(rec[k]); s != "" {
			return s
		}
	}
	return ""
}

// coerceString renders a decoded JSON scalar as a string. Numbers are
// rendered without an exponent so numeric ids survive.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// stringSlice coerces a decoded JSON array into []string, or nil.
func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		switch t := e.(type) {
		case string:
			out = append(out, t)
		case float64:
			out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
		default:
			out = append(out, fmt.Sprintf("%v", t))
		}
	}
	return out
}

// asInt reports whether v is a JSON number with an integral value.
func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}
