package filenamify

import (
	"unicode/utf8"
)

// ValidateReplacement 检查替换符是否可用
// 替换符不能包含保留字符、控制字符、格式字符、非字符，零宽连接符除外
func ValidateReplacement(replacement string) error {
	if !utf8.ValidString(replacement) {
		return wrapInvalidReplacement(utf8.RuneError)
	}
	for _, r := range replacement {
		if isDisallowed(r) {
			return wrapInvalidReplacement(r)
		}
	}
	return nil
}

// validate 在任何转换之前检查输入和配置
func validate(op, input string, opts Options) error {
	if !utf8.ValidString(input) {
		return &Error{Op: op, Input: input, Err: ErrInvalidInputType}
	}
	if err := ValidateReplacement(opts.Replacement); err != nil {
		return &Error{Op: op, Input: input, Err: err}
	}
	if opts.MaxLength < 0 {
		return &Error{Op: op, Input: input, Err: wrapInvalidMaxLength(opts.MaxLength)}
	}
	return nil
}
