package filenamify

// Options 控制清理行为
type Options struct {
	// Replacement 用于替换非法字符，不能包含保留字符或控制字符
	Replacement string
	// MaxLength 是结果的最大长度，按 UTF-16 码元计算
	MaxLength int
}

// Option 修改 Options
type Option func(*Options)

// DefaultOptions 返回默认配置：替换符 "!"，最大长度 100
func DefaultOptions() Options {
	return Options{
		Replacement: DefaultReplacement,
		MaxLength:   DefaultMaxLength,
	}
}

// WithReplacement 设置替换符，允许为空串
func WithReplacement(replacement string) Option {
	return func(o *Options) {
		o.Replacement = replacement
	}
}

// WithMaxLength 设置最大长度
func WithMaxLength(maxLength int) Option {
	return func(o *Options) {
		o.MaxLength = maxLength
	}
}

// WithOptions 整体替换配置
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
