package filenamify

import (
	"unicode"
	"unicode/utf8"
)

// 保留字符查找表 - 包初始化时自动构建
var reservedCharTable [utf8.RuneSelf]bool

func init() {
	for _, c := range reservedChars {
		reservedCharTable[c] = true
	}
}

// classifyCharacter 分类字符
func classifyCharacter(r rune) charClass {
	// 快速路径：普通 ASCII
	if r < utf8.RuneSelf {
		switch {
		case reservedCharTable[r]:
			return classReserved
		case r == ' ':
			return classKeep
		case unicode.IsSpace(r):
			return classSpace
		case r < 0x20 || r == 0x7F:
			return classControl
		}
		return classKeep
	}

	if isFoldedSpace(r) {
		return classSpace
	}
	if isDisallowedControl(r) {
		return classControl
	}
	return classKeep
}

// isReservedChar 判断是否是 Windows 保留字符 < > : " / \ | ? *
func isReservedChar(r rune) bool {
	return r < utf8.RuneSelf && reservedCharTable[r]
}

// isFoldedSpace 判断字符是否是需要折叠为普通空格的空白字符
// 包括 Tab、换行、NBSP、全角空格、各种宽度的空格、行/段分隔符等
func isFoldedSpace(r rune) bool {
	return r != ' ' && unicode.IsSpace(r)
}

// isDisallowedControl 判断字符是否是文件名中不允许的控制/格式字符
// 零宽连接符除外，emoji 序列需要它
func isDisallowedControl(r rune) bool {
	// 双向控制字符可以伪装扩展名，优先判断
	switch {
	case r == runeZeroWidthJoiner:
		return false
	case r == runeLTRMark || r == runeRTLMark:
		return true
	case r >= runeLRE && r <= runeRLO:
		return true
	case r >= runeLRI && r <= runePDI:
		return true
	}

	// C0、DEL、C1
	if unicode.IsControl(r) {
		return true
	}

	// 格式字符（BOM、软连字符、零宽空格等）和行/段分隔符
	if unicode.In(r, unicode.Cf, unicode.Zl, unicode.Zp) {
		return true
	}

	return isNoncharacter(r)
}

// isNoncharacter 判断是否是 Unicode 非字符
// U+FDD0..U+FDEF 以及每个平面的最后两个码位
func isNoncharacter(r rune) bool {
	if r >= runeNoncharFirst && r <= runeNoncharLast {
		return true
	}
	return r&0xFFFE == 0xFFFE
}

// isDisallowed 判断字符是否需要被替换
func isDisallowed(r rune) bool {
	return isReservedChar(r) || isDisallowedControl(r)
}
