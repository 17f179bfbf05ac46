package responder

import "strings"

// MergeRules 将存储的规则覆盖到基础目录上.
// 同名规则原位替换, 新规则按 overrides 的顺序追加在最后.
func MergeRules(base, overrides []Rule) []Rule {
	return merge(base, overrides, func(r Rule) string { return r.Name })
}

// MergeTerms 与 MergeRules 相同, 按术语名覆盖.
// 覆盖项没有 Patterns 时沿用原词条的 Patterns
func MergeTerms(base, overrides []Term) []Term {
	patterns := make(map[string][]string, len(base))
	for _, t := range base {
		patterns[strings.ToLower(strings.TrimSpace(t.Name))] = t.Patterns
	}
	filled := make([]Term, 0, len(overrides))
	for _, t := range overrides {
		if len(t.Patterns) == 0 {
			t.Patterns = patterns[strings.ToLower(strings.TrimSpace(t.Name))]
		}
		filled = append(filled, t)
	}
	return merge(base, filled, func(t Term) string { return t.Name })
}

func merge[T any](base, overrides []T, name func(T) string) []T {
	out := append([]T(nil), base...)
	index := make(map[string]int, len(out))
	for i, v := range out {
		index[strings.ToLower(strings.TrimSpace(name(v)))] = i
	}

	for _, v := range overrides {
		key := strings.ToLower(strings.TrimSpace(name(v)))
		if i, ok := index[key]; ok {
			out[i] = v
			continue
		}
		index[key] = len(out)
		out = append(out, v)
	}
	return out
}
