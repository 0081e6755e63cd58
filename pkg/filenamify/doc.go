// Package filenamify 将任意 Unicode 字符串转换为可移植的合法文件名
//
// 本包以 Windows 文件系统的限制为准，生成的文件名在 Linux、macOS 上同样安全。
// 输入可以是标题、URL、用户输入等任意文本，输出是确定性的纯函数结果。
//
// 处理流程（严格按顺序执行，后一步不会回调前一步）：
//
//   - 校验：输入必须是合法 UTF-8，替换符不能包含保留字符或控制字符
//   - 标准化：NFC 组合，并把各种 Unicode 空白折叠为普通空格
//   - 字符替换：合并相邻的保留字符，去掉首尾保留字符，替换相对路径前缀、
//     保留字符和控制/格式字符，去掉末尾的点和空格，修复边界，处理设备名
//   - 长度限制：按 UTF-16 码元截断，保留扩展名，不拆分字形簇
//
// 基本用法：
//
//	import "github.com/tragoedia0722/filenamify/pkg/filenamify"
//
//	name, err := filenamify.Sanitize("<foo/bar>")
//	// 结果: "foo!bar"
//
//	name, err = filenamify.Sanitize("foo:\"bar\"", filenamify.WithReplacement("🐴"))
//	// 结果: "foo🐴bar"
//
//	name, err = filenamify.Sanitize("CON")
//	// 结果: "CON!"
//
//	p, err := filenamify.Path("~/downloads/foo:bar.txt")
//	// 结果: "/home/user/downloads/foo!bar.txt"
//
// 并发：
//
// 所有函数都是无状态的纯函数，可以在多个 goroutine 中并发调用。
// 字形簇切分使用 github.com/rivo/uniseg 的只读表，不需要加锁。
//
// 错误：
//
// 只有三种错误，都可以用 errors.Is 判断：
//   - ErrInvalidInputType: 输入不是合法的 UTF-8
//   - ErrInvalidReplacementToken: 替换符包含保留字符或控制字符（零宽连接符除外）
//   - ErrInvalidMaxLength: MaxLength 为负数
//
// 其余输入（空串、全是保留字符、超长字符串）都会得到合法的输出，不会报错。
package filenamify
