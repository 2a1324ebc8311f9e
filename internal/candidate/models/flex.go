package models

import (
	"encoding/json"
	"strings"
)

// FlexItem is one entry of a flexible list field, decided once at parse
// time. Plain-text entries carry only Title; structured entries may also
// carry Detail (description, endorsement type or committee role) and
// Status.
type FlexItem struct {
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	Status string `json:"status,omitempty"`
}

// flexObject accepts the field aliases the stored JSON uses.
type flexObject struct {
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Role        string `json:"role"`
	Status      string `json:"status"`
}

// ParseFlexList parses a flexible list field. It attempts JSON first: an
// array whose elements are strings or objects keyed by title|name,
// description|type|role and status. Anything that is not such an array
// falls back to splitting on the runes in seps, so malformed JSON never
// surfaces as an error.
func ParseFlexList(raw string, seps string) []FlexItem {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err == nil {
		items := make([]FlexItem, 0, len(elems))
		for _, elem := range elems {
			if item, ok := parseFlexElem(elem); ok {
				items = append(items, item)
			}
		}
		return items
	}

	return splitPlainList(raw, seps)
}

func parseFlexElem(elem json.RawMessage) (FlexItem, bool) {
	var s string
	if err := json.Unmarshal(elem, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return FlexItem{}, false
		}
		return FlexItem{Title: s}, true
	}

	var obj flexObject
	if err := json.Unmarshal(elem, &obj); err != nil {
		return FlexItem{}, false
	}
	item := FlexItem{
		Title:  obj.Title,
		Detail: obj.Description,
		Status: obj.Status,
	}
	if item.Title == "" {
		item.Title = obj.Name
	}
	if item.Detail == "" {
		item.Detail = obj.Type
	}
	if item.Detail == "" {
		item.Detail = obj.Role
	}
	if item.Title == "" {
		return FlexItem{}, false
	}
	return item, true
}

func splitPlainList(raw, seps string) []FlexItem {
	if seps == "" {
		seps = ","
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})

	items := make([]FlexItem, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, FlexItem{Title: p})
	}
	return items
}
