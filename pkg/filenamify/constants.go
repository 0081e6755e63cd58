package filenamify

const (
	// DefaultReplacement 是默认的替换符
	DefaultReplacement = "!"

	// DefaultMaxLength 是默认的最大长度（UTF-16 码元）
	// 文件系统一般允许 255，这里出于可用性取 100
	DefaultMaxLength = 100

	// DefaultFilename 是结果为空且替换符不可用时的默认文件名
	DefaultFilename = "unnamed_file"

	// ReservedSuffix 是替换符为空时追加在设备名后的后缀
	ReservedSuffix = "_file"
)

// Unicode 字符常量 - 命名以提高可读性
const (
	// LTR/RTL 标记
	runeLTRMark = 0x200E // Left-to-Right Mark
	runeRTLMark = 0x200F // Right-to-Left Mark

	// 双向嵌入/覆盖字符
	runeLRE = 0x202A // Left-to-Right Embedding
	runeRLO = 0x202E // Right-to-Left Override

	// 双向隔离字符
	runeLRI = 0x2066 // Left-to-Right Isolate
	runePDI = 0x2069 // Pop Directional Isolate

	// 零宽连接符，emoji 序列依赖它，始终保留
	runeZeroWidthJoiner = 0x200D

	// 非字符区间
	runeNoncharFirst = 0xFDD0
	runeNoncharLast  = 0xFDEF
)

// Windows 保留的文件名字符
const reservedChars = `<>:"/\|?*`

// 末尾不允许出现的字符
const trailingChars = ". "
