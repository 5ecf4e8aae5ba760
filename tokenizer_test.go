package trie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceTokenizer(t *testing.T) {
	t.Run("single grapheme tokens", func(t *testing.T) {
		assert.Equal(t, []string{"c", "a", "t"}, Slice(1).Tokenize("cat"))
	})

	t.Run("chunks with short tail", func(t *testing.T) {
		assert.Equal(t, []string{"ab", "cd", "e"}, Slice(2).Tokenize("abcde"))
		assert.Equal(t, []string{"ab", "cd", "ef"}, Slice(2).Tokenize("abcdef"))
	})

	t.Run("multi codepoint graphemes stay whole", func(t *testing.T) {
		// decomposed e + combining acute, o + combining diaeresis
		assert.Equal(t, []string{"é", "ö"}, Slice(1).Tokenize("éö"))

		family := "\U0001F468‍\U0001F469‍\U0001F467"
		assert.Equal(t, []string{family, "x"}, Slice(1).Tokenize(family+"x"))
	})

	t.Run("empty key has no tokens", func(t *testing.T) {
		assert.Empty(t, Slice(1).Tokenize(""))
	})

	t.Run("round trip", func(t *testing.T) {
		tk := Slice(2)
		for _, key := range []string{"", "a", "héllo", "日本語テスト", "\U0001F44D\U0001F3FDok"} {
			assert.Equal(t, key, tk.Detokenize(tk.Tokenize(key)))
		}
	})

	t.Run("rejects zero length", func(t *testing.T) {
		assert.Panics(t, func() { Slice(0) })
	})
}

func TestDelimiterTokenizer(t *testing.T) {
	t.Run("splits and rejoins", func(t *testing.T) {
		tk := Delimiter("_")
		assert.Equal(t, []string{"a", "b", "c"}, tk.Tokenize("a_b_c"))
		assert.Equal(t, "a_b_c", tk.Detokenize([]string{"a", "b", "c"}))
	})

	t.Run("multi character delimiter", func(t *testing.T) {
		tk := Delimiter("::")
		assert.Equal(t, []string{"pkg", "sub", "fn"}, tk.Tokenize("pkg::sub::fn"))
		assert.Equal(t, "pkg::sub::fn", tk.Detokenize(tk.Tokenize("pkg::sub::fn")))
	})

	t.Run("adjacent delimiters keep empty tokens", func(t *testing.T) {
		tk := Delimiter("_")
		assert.Equal(t, []string{"a", "", "b"}, tk.Tokenize("a__b"))
		assert.Equal(t, "a__b", tk.Detokenize(tk.Tokenize("a__b")))
		assert.Equal(t, "_a", tk.Detokenize(tk.Tokenize("_a")))
	})

	t.Run("empty key has no tokens", func(t *testing.T) {
		assert.Empty(t, Delimiter("_").Tokenize(""))
	})

	t.Run("rejects empty delimiter", func(t *testing.T) {
		assert.Panics(t, func() { Delimiter("") })
	})
}

func TestCustomTokenizer(t *testing.T) {
	t.Run("uses supplied functions", func(t *testing.T) {
		tk := Custom(strings.Fields, func(tokens []string) string {
			return strings.Join(tokens, " ")
		})
		assert.Equal(t, []string{"hello", "big", "world"}, tk.Tokenize("hello big world"))
		assert.Equal(t, "hello big world", tk.Detokenize(tk.Tokenize("hello big world")))
	})

	t.Run("rejects nil functions", func(t *testing.T) {
		assert.Panics(t, func() { Custom(nil, nil) })
	})
}

func TestTokenizerInspection(t *testing.T) {
	assert.Equal(t, KindSlice, Slice(3).Kind())
	assert.Equal(t, "Slice(3)", Slice(3).String())

	assert.Equal(t, KindDelimiter, Delimiter("_").Kind())
	assert.Equal(t, `Delimiter("_")`, Delimiter("_").String())

	tk := Custom(strings.Fields, func(tokens []string) string { return strings.Join(tokens, " ") })
	assert.Equal(t, KindCustom, tk.Kind())
	assert.Equal(t, "Custom", tk.String())
}
