package bank

import (
	"encoding/json"
	"errors"
	"strings"
)

// ParseCategoryMap decodes a category override file. Accepted shapes:
// a JSON object of id→category, a JSON array of {id|qid, category|cat}
// rows, or plain lines of "id,category" (comma or tab separated).
func ParseCategoryMap(data []byte) (CategoryMap, error) {
	cm := CategoryMap{}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err == nil {
		for k, v := range obj {
			if s := coerceString(v); s != "" {
				cm[k] = s
			}
		}
		return cm, nil
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err == nil {
		for _, row := range rows {
			id := firstString(row, "id", "qid")
			cat := firstString(row, "category", "cat")
			if id != "" && cat != "" {
				cm[id] = cat
			}
		}
		return cm, nil
	}

	// Delimited lines fallback.
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		parts := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == '\t'
		})
		if len(parts) >= 2 {
			cm[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
	if len(cm) == 0 {
		return nil, errors.New("category map holds no entries")
	}
	return cm, nil
}
