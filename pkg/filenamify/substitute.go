package filenamify

import (
	"strings"
	"unicode/utf8"
)

// collapseDisallowed 把连续的非法字符合并为一个（保留最后一个）
// 例如 "foo<<<<bar" -> "foo<bar"，避免替换后出现 "foo!!!!bar"
// 替换符为空时不需要合并
func collapseDisallowed(ctx *sanitizeContext) {
	if ctx.opts.Replacement == "" {
		return
	}

	s := ctx.value
	var builder strings.Builder
	builder.Grow(len(s))

	pending := rune(-1)
	for _, r := range s {
		if isDisallowed(r) {
			pending = r
			continue
		}
		if pending >= 0 {
			builder.WriteRune(pending)
			pending = -1
		}
		builder.WriteRune(r)
	}
	if pending >= 0 {
		builder.WriteRune(pending)
	}

	ctx.value = builder.String()
}

// trimOuter 去掉首尾各一个非法字符
// 例如 "//foo//bar//" -> "foo/bar"，"<foo/bar>" -> "foo/bar"
// 单个字符不处理，"<" 仍会被替换为替换符
func trimOuter(ctx *sanitizeContext) {
	s := ctx.value
	if ctx.opts.Replacement == "" || utf8.RuneCountInString(s) < 2 {
		return
	}

	if r, size := utf8.DecodeRuneInString(s); isDisallowed(r) {
		s = s[size:]
		ctx.trimmedHead = true
	}
	if r, size := utf8.DecodeLastRuneInString(s); s != "" && isDisallowed(r) {
		s = s[:len(s)-size]
		ctx.trimmedTail = true
	}

	ctx.value = s
}

// replaceRelativePrefix 替换开头的相对路径前缀
// "." ".." "./" "../" "..\" 这类前缀整体替换为一个替换符，
// 分隔符一并消耗；".gitignore" 这种隐藏文件不受影响
func replaceRelativePrefix(ctx *sanitizeContext) {
	s := ctx.value
	dots := len(s) - len(strings.TrimLeft(s, "."))
	if dots == 0 {
		return
	}

	switch {
	case dots == len(s):
		ctx.value = ctx.opts.Replacement
	case s[dots] == '/' || s[dots] == '\\':
		ctx.value = ctx.opts.Replacement + s[dots+1:]
	}
}

// replaceReserved 把保留字符替换为替换符
func replaceReserved(ctx *sanitizeContext) {
	ctx.value = replaceClass(ctx.value, ctx.opts.Replacement, classReserved)
}

// replaceControl 把控制字符、格式字符、非字符替换为替换符
// 双向覆盖字符可以把 "exe.txt" 显示成别的样子，必须去掉
func replaceControl(ctx *sanitizeContext) {
	ctx.value = replaceClass(ctx.value, ctx.opts.Replacement, classControl)
}

func replaceClass(s, replacement string, class charClass) string {
	match := func(r rune) bool {
		return classifyCharacter(r) == class
	}
	if strings.IndexFunc(s, match) < 0 {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + len(replacement))
	for _, r := range s {
		if match(r) {
			builder.WriteString(replacement)
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

// trimTrailing 去掉末尾的点和空格（Windows 不允许）
//
// 如果 trimOuter 去掉了结尾的保留字符，导致结果以点结尾（"foo.<" -> "foo."），
// 说明点后面本来有内容，此时在点后补一个替换符（"foo.!"）而不是删掉点
func trimTrailing(ctx *sanitizeContext) {
	s := ctx.value
	trimmed := strings.TrimRight(s, trailingChars)
	if trimmed == s {
		return
	}

	if ctx.trimmedTail && strings.HasSuffix(s, ".") {
		if token := strings.TrimRight(ctx.opts.Replacement, trailingChars); token != "" {
			ctx.value = s + token
			return
		}
	}

	ctx.value = trimmed
}

// repairEdges 修复边界
//
//   - 结果为空时使用替换符，替换符不可用时使用 DefaultFilename
//   - trimOuter 去掉开头的保留字符后露出了点（"/.foo" -> ".foo"），
//     在前面补一个替换符（"!.foo"），避免凭空生成隐藏文件
func repairEdges(ctx *sanitizeContext) {
	if ctx.value == "" {
		ctx.value = edgeToken(ctx.opts.Replacement, DefaultFilename)
		return
	}

	if ctx.trimmedHead && strings.HasPrefix(ctx.value, ".") {
		ctx.value = ctx.opts.Replacement + ctx.value
	}
}

// edgeToken 返回可以单独放在文件名边界上的替换符
// 去掉末尾的点和空格后为空，则返回 fallback
func edgeToken(replacement, fallback string) string {
	if token := strings.TrimRight(replacement, trailingChars); token != "" {
		return token
	}
	return fallback
}
