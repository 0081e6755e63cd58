package filenamify

// stage 是流水线中的一步，只读写 sanitizeContext
type stage struct {
	name  string
	apply func(*sanitizeContext)
}

// pipeline 按顺序执行，每一步的输出是下一步的输入
var pipeline = []stage{
	{name: "normalize", apply: normalize},
	{name: "collapse", apply: collapseDisallowed},
	{name: "trim-outer", apply: trimOuter},
	{name: "relative-prefix", apply: replaceRelativePrefix},
	{name: "reserved", apply: replaceReserved},
	{name: "control", apply: replaceControl},
	{name: "trailing", apply: trimTrailing},
	{name: "edge-repair", apply: repairEdges},
	{name: "device-name", apply: guardReservedName},
	{name: "length", apply: boundLength},
}

// Stages 返回流水线各步骤的名称，顺序与执行顺序一致
func Stages() []string {
	names := make([]string, len(pipeline))
	for i, s := range pipeline {
		names[i] = s.name
	}
	return names
}

// Sanitize 把 input 转换为合法的文件名
//
// 默认使用 "!" 作为替换符，最大长度 100。
// 只有输入不是合法 UTF-8 或配置非法时才会返回错误。
func Sanitize(input string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	if err := validate("sanitize", input, o); err != nil {
		return "", err
	}

	ctx := &sanitizeContext{value: input, opts: o}
	for _, s := range pipeline {
		s.apply(ctx)
	}
	return ctx.value, nil
}

// Trace 与 Sanitize 相同，但返回每一步的输出，便于排查
// 最后一项的 Output 就是 Sanitize 的结果
func Trace(input string, opts ...Option) ([]StageResult, error) {
	o := buildOptions(opts)
	if err := validate("trace", input, o); err != nil {
		return nil, err
	}

	ctx := &sanitizeContext{value: input, opts: o}
	results := make([]StageResult, 0, len(pipeline))
	for _, s := range pipeline {
		s.apply(ctx)
		results = append(results, StageResult{Stage: s.name, Output: ctx.value})
	}
	return results, nil
}
