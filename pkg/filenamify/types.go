package filenamify

// charClass 表示字符所属的类别
type charClass int

const (
	classKeep     charClass = iota // 保留字符
	classSpace                     // 需要折叠为普通空格的空白
	classReserved                  // 文件系统保留字符
	classControl                   // 控制字符、格式字符、非字符
)

// StageResult 记录流水线中某一步的输出
type StageResult struct {
	Stage  string // 步骤名
	Output string // 该步骤执行后的字符串
}

// String 返回该步骤的输出
func (r StageResult) String() string {
	return r.Output
}

// sanitizeContext 是流水线在各步骤之间传递的状态
type sanitizeContext struct {
	value string
	opts  Options

	// trimmedHead/trimmedTail 记录 trimOuter 是否去掉了首/尾的保留字符，
	// 供后续的边界修复使用
	trimmedHead bool
	trimmedTail bool
}
