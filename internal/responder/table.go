package responder

import "strings"

// DefaultResponse 未命中任何关键词时的默认回复
const DefaultResponse = "I'm sorry, I don't understand."

// Rule 关键词规则
type Rule struct {
	Pattern  string `json:"pattern" yaml:"pattern"`   // 关键词（子串匹配）
	Response string `json:"response" yaml:"response"` // 命中时的回复
}

// KeywordTable 有序关键词表，先声明的规则优先
//
// 匹配时关键词和输入都转为小写，直接构造的表也按不区分大小写处理。
type KeywordTable struct {
	Rules   []Rule `json:"rules"`
	Default string `json:"default"`
}

// Shadow 描述一条永远不会被命中的规则
type Shadow struct {
	Index   int  // 被遮蔽规则的下标
	Rule    Rule // 被遮蔽的规则
	ByIndex int  // 遮蔽它的规则下标
	By      Rule // 遮蔽它的规则
}

// NewKeywordTable 创建关键词表
//
// 关键词统一转为小写，回复原样保存。
func NewKeywordTable(rules []Rule, defaultResponse string) KeywordTable {
	folded := make([]Rule, len(rules))
	for i, rule := range rules {
		folded[i] = Rule{
			Pattern:  strings.ToLower(rule.Pattern),
			Response: rule.Response,
		}
	}
	return KeywordTable{
		Rules:   folded,
		Default: defaultResponse,
	}
}

// Resolve 查找第一条关键词出现在输入中的规则
func (t KeywordTable) Resolve(text string) (Rule, bool) {
	lower := strings.ToLower(text)
	for _, rule := range t.Rules {
		if strings.Contains(lower, strings.ToLower(rule.Pattern)) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Unreachable 找出被前面规则遮蔽的规则
//
// 若前面某条规则的关键词是后面规则关键词的子串，则任何命中后者的输入
// 都会先命中前者，后者永远不可达。重复关键词是其中的特例。
func (t KeywordTable) Unreachable() []Shadow {
	var shadows []Shadow
	for j, later := range t.Rules {
		pattern := strings.ToLower(later.Pattern)
		for i := 0; i < j; i++ {
			if strings.Contains(pattern, strings.ToLower(t.Rules[i].Pattern)) {
				shadows = append(shadows, Shadow{
					Index:   j,
					Rule:    later,
					ByIndex: i,
					By:      t.Rules[i],
				})
				break
			}
		}
	}
	return shadows
}
