package filenamify

import (
	"strings"
	"testing"
)

func BenchmarkSanitize_Simple(b *testing.B) {
	filename := "simple_filename.txt"
	for i := 0; i < b.N; i++ {
		_, _ = Sanitize(filename)
	}
}

func BenchmarkSanitize_WithReservedChars(b *testing.B) {
	filename := `test<>:"/\|?*file.txt`
	for i := 0; i < b.N; i++ {
		_, _ = Sanitize(filename)
	}
}

func BenchmarkSanitize_WithUnicode(b *testing.B) {
	filename := "test\u200E\u200F\u00A0\u3000file测试.txt"
	for i := 0; i < b.N; i++ {
		_, _ = Sanitize(filename)
	}
}

func BenchmarkSanitize_Decomposed(b *testing.B) {
	filename := strings.Repeat("e\u0301", 40) + ".txt"
	for i := 0; i < b.N; i++ {
		_, _ = Sanitize(filename)
	}
}

func BenchmarkSanitize_ReservedName(b *testing.B) {
	filename := "CON"
	for i := 0; i < b.N; i++ {
		_, _ = Sanitize(filename)
	}
}

func BenchmarkSanitize_NeedsTruncation(b *testing.B) {
	filename := strings.Repeat("a", 300) + ".txt"
	for i := 0; i < b.N; i++ {
		_, _ = Sanitize(filename)
	}
}

func BenchmarkSanitize_EmojiTruncation(b *testing.B) {
	filename := strings.Repeat(family, 30)
	for i := 0; i < b.N; i++ {
		_, _ = Sanitize(filename)
	}
}

func BenchmarkTruncateGraphemes(b *testing.B) {
	filename := strings.Repeat("a", 300)
	for i := 0; i < b.N; i++ {
		truncateGraphemes(filename, 100)
	}
}

// Memory allocation benchmarks
func BenchmarkSanitize_Allocs(b *testing.B) {
	filename := `test<>:"/\|?*file测试` + "\u200E\u200F.txt"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Sanitize(filename)
	}
}

func BenchmarkScenarios(b *testing.B) {
	scenarios := []struct {
		name     string
		filename string
	}{
		{"valid", "document.pdf"},
		{"url", "https://example.com/path?query=1"},
		{"relative", "../../secret"},
		{"bidi", "invoice\u202Etxt.exe"},
		{"long", strings.Repeat("long name ", 30) + ".mp4"},
	}

	for _, s := range scenarios {
		b.Run(s.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Sanitize(s.filename)
			}
		})
	}
}
