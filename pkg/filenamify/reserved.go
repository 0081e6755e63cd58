package filenamify

import (
	"strings"
)

// 保留名集合 - O(1) 查找
var reservedNameSet = map[string]bool{
	"con": true, "prn": true, "aux": true, "nul": true,
	"com0": true, "com1": true, "com2": true, "com3": true, "com4": true,
	"com5": true, "com6": true, "com7": true, "com8": true, "com9": true,
	"lpt0": true, "lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true,
	"lpt5": true, "lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

// ReservedNames 返回所有 Windows 保留的设备名列表
// 这些名称在 Windows 中有特殊含义，不能用作文件名
func ReservedNames() []string {
	return []string{
		"CON", "PRN", "AUX", "NUL",
		"COM0", "COM1", "COM2", "COM3", "COM4",
		"COM5", "COM6", "COM7", "COM8", "COM9",
		"LPT0", "LPT1", "LPT2", "LPT3", "LPT4",
		"LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
	}
}

// IsReservedName 检查整个文件名是否是 Windows 保留的设备名
// 检查不区分大小写；带扩展名的 "con.txt" 不算
func IsReservedName(name string) bool {
	if len(name) < 3 || len(name) > 4 {
		return false
	}
	return reservedNameSet[strings.ToLower(name)]
}

// guardReservedName 处理 Windows 保留的设备名
// 如果文件名是保留名，在后面追加替换符，例如 "con" -> "con!"
// 替换符为空时追加 ReservedSuffix，例如 "con" -> "con_file"
func guardReservedName(ctx *sanitizeContext) {
	if !IsReservedName(ctx.value) {
		return
	}
	ctx.value += edgeToken(ctx.opts.Replacement, ReservedSuffix)
}
