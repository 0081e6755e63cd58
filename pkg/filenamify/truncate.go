package filenamify

import (
	"strings"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// boundLength 把结果限制在 MaxLength 个 UTF-16 码元以内
//
// 扩展名（最后一个点及其后的部分）整体保留，只截断前面的部分，
// 截断位置总是字形簇边界。扩展名本身超过 MaxLength 时结果就是扩展名，
// 此时长度会超过 MaxLength。
func boundLength(ctx *sanitizeContext) {
	maxLength := ctx.opts.MaxLength
	s := ctx.value
	if utf16Len(s) <= maxLength {
		return
	}

	stem, ext := splitExtension(s)
	budget := maxLength - utf16Len(ext)
	if budget < 0 {
		budget = 0
	}
	stem = truncateGraphemes(stem, budget)

	// 没有扩展名时，截断可能露出末尾的点/空格或者正好截成设备名
	if ext == "" {
		stem = finishCut(stem)
		if stem == "" && maxLength > 0 {
			token := edgeToken(ctx.opts.Replacement, DefaultFilename)
			stem = finishCut(truncateGraphemes(token, maxLength))
		}
	}

	ctx.value = stem + ext
}

// splitExtension 在最后一个点处拆分
// 返回 (stem, ext)，ext 包含点；没有点时 ext 为空
//
// 例如:
//
//	"file.txt" -> ("file", ".txt")
//	"file" -> ("file", "")
//	".gitignore" -> ("", ".gitignore")
func splitExtension(s string) (string, string) {
	dotIndex := strings.LastIndexByte(s, '.')
	if dotIndex < 0 {
		return s, ""
	}
	return s[:dotIndex], s[dotIndex:]
}

// truncateGraphemes 按字形簇截断，结果不超过 budget 个 UTF-16 码元
// 放不下的字形簇整个丢弃，不会截出半个 emoji
func truncateGraphemes(s string, budget int) string {
	if budget <= 0 {
		return ""
	}

	used, end := 0, 0
	rest := s
	state := -1
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		n := utf16Len(cluster)
		if used+n > budget {
			break
		}
		used += n
		end += len(cluster)
	}

	return s[:end]
}

// dropLastGrapheme 去掉最后一个字形簇
func dropLastGrapheme(s string) string {
	last, offset := 0, 0
	rest := s
	state := -1
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = offset
		offset += len(cluster)
	}
	return s[:last]
}

// finishCut 去掉截断后末尾的点和空格，并避开设备名
func finishCut(s string) string {
	for {
		s = strings.TrimRight(s, trailingChars)
		if !IsReservedName(s) {
			return s
		}
		s = dropLastGrapheme(s)
	}
}

// utf16Len 返回字符串的 UTF-16 码元数
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
