package filenamify

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalize 做 NFC 组合，并把各种 Unicode 空白折叠为普通空格
// 连续空格不合并，普通空格原样保留
func normalize(ctx *sanitizeContext) {
	s := norm.NFC.String(ctx.value)

	if strings.IndexFunc(s, isFoldedSpace) < 0 {
		ctx.value = s
		return
	}

	ctx.value = strings.Map(func(r rune) rune {
		if classifyCharacter(r) == classSpace {
			return ' '
		}
		return r
	}, s)
}
