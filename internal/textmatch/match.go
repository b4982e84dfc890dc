// Package textmatch 内存中的检索匹配。
// 目前在取回的候选集上做过滤；调用方只依赖 Matcher，
// 之后迁移到存储侧查询时无需改动调用点。
package textmatch

import "strings"

// Matcher 判断候选文本是否命中查询
type Matcher interface {
	Match(text string) bool
}

// queryMatcher 命中条件：全文相等，或查询词是文本的完整分词之一（均不区分大小写）
type queryMatcher struct {
	query string
}

// NewMatcher 创建查询匹配器
func NewMatcher(query string) Matcher {
	return &queryMatcher{query: strings.ToLower(strings.TrimSpace(query))}
}

func (m *queryMatcher) Match(text string) bool {
	if m.query == "" {
		return false
	}
	lower := strings.ToLower(text)
	if lower == m.query {
		return true
	}
	for _, token := range strings.Fields(lower) {
		if token == m.query {
			return true
		}
	}
	return false
}
