package models

import (
	"encoding/json"
	"strings"
)

// Tag is a category or subcategory label attached to a profile or a
// request. Subcategories may carry an optional display color.
type Tag struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// TagList accepts the heterogeneous shapes found in stored rows: old rows
// keep plain strings, newer rows keep {"name": ...} objects. Malformed
// entries are skipped instead of failing the whole row.
type TagList []Tag

func (t *TagList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Single scalar instead of an array also shows up in legacy rows.
		var single string
		if err2 := json.Unmarshal(data, &single); err2 == nil {
			if name := strings.TrimSpace(single); name != "" {
				*t = TagList{{Name: name}}
				return nil
			}
			*t = nil
			return nil
		}
		return err
	}

	list := make(TagList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			if name := strings.TrimSpace(s); name != "" {
				list = append(list, Tag{Name: name})
			}
			continue
		}
		var tag Tag
		if err := json.Unmarshal(item, &tag); err == nil {
			if name := strings.TrimSpace(tag.Name); name != "" {
				tag.Name = name
				list = append(list, tag)
			}
			continue
		}
		// неизвестная форма — пропускаем
	}
	*t = list
	return nil
}

// TagListFromJSON decodes a stored jsonb payload. Empty or malformed
// payloads yield an empty list.
func TagListFromJSON(data string) TagList {
	data = strings.TrimSpace(data)
	if data == "" {
		return nil
	}
	var list TagList
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil
	}
	return list
}

// NormalizeTagName is the canonical comparison form for tag names.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Names returns the deduplicated tag names in their original order.
func (t TagList) Names() []string {
	seen := make(map[string]struct{}, len(t))
	var names []string
	for _, tag := range t {
		key := NormalizeTagName(tag.Name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, strings.TrimSpace(tag.Name))
	}
	return names
}

// ContainsName reports whether the list carries the given name, compared
// in normalized form.
func (t TagList) ContainsName(name string) bool {
	key := NormalizeTagName(name)
	for _, tag := range t {
		if NormalizeTagName(tag.Name) == key {
			return true
		}
	}
	return false
}
