package forms

// AnswerMap maps question ids (or matrix sub-keys) to values. A value is
// either a single string or an ordered list of strings for multi-select.
// Absent keys are unanswered.
type AnswerMap map[string]any

// String returns the single-string value of a key, or "" when the key is
// absent or holds a list.
func (m AnswerMap) String(id string) string {
	s, _ := m[id].(string)
	return s
}

// Strings returns the multi-select value of a key. JSON round-trips decode
// lists as []any, so both representations are accepted.
func (m AnswerMap) Strings(id string) []string {
	switch v := m[id].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Empty reports whether a key is unanswered: absent, blank, or an empty list.
func (m AnswerMap) Empty(id string) bool {
	switch v := m[id].(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}
	return false
}

func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		switch list := v.(type) {
		case []string:
			v = append([]string(nil), list...)
		case []any:
			v = append([]any(nil), list...)
		}
		out[k] = v
	}
	return out
}
