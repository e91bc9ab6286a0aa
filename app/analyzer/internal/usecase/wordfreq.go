package usecase

import (
	"sort"
	"strings"
	"unicode"

	"github.com/iWorld-y/text_radar/app/analyzer/internal/domain"
)

// dottedCapitalI 完整小写形式是 i 加组合附加点（U+0307），
// strings.ToLower 只给出 i，会把 "İstanbul" 合并成一个单词
var dottedCapitalI = strings.NewReplacer("\u0130", "i\u0307")

// Tokenize 把文本转成小写单词序列。
// 先按单词字符（字母、数字、下划线）切出连续片段，只保留完全由 ASCII 字母组成的片段，
// 因此 "don't" 得到 don、t，而 "abc123" 与 "café" 被整体丢弃。
func Tokenize(text string) []string {
	lower := strings.ToLower(dottedCapitalI.Replace(text))

	var words []string
	start := -1
	for i, r := range lower {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = appendIfASCIIWord(words, lower[start:i])
			start = -1
		}
	}
	if start >= 0 {
		words = appendIfASCIIWord(words, lower[start:])
	}
	return words
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func appendIfASCIIWord(words []string, s string) []string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return words
		}
	}
	return append(words, s)
}

// CountWords 统计词频，结果按单词首次出现的顺序排列
func CountWords(words []string) []domain.WordCount {
	index := make(map[string]int, len(words))
	var counts []domain.WordCount
	for _, w := range words {
		if i, ok := index[w]; ok {
			counts[i].Count++
			continue
		}
		index[w] = len(counts)
		counts = append(counts, domain.WordCount{Word: w, Count: 1})
	}
	return counts
}

// TopN 按次数降序取前 n 个，次数相同时先出现的在前。n <= 0 时返回全部
func TopN(counts []domain.WordCount, n int) []domain.WordCount {
	sorted := make([]domain.WordCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
