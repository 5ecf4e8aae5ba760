package trie

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TokenizeFunc splits a key into an ordered sequence of tokens.
type TokenizeFunc func(key string) []string

// DetokenizeFunc joins a sequence of tokens back into a key.
type DetokenizeFunc func(tokens []string) string

// TokenizerKind identifies which tokenization strategy a Tokenizer uses.
type TokenizerKind uint8

const (
	KindSlice TokenizerKind = iota
	KindDelimiter
	KindCustom
)

// Tokenizer converts keys to token sequences and back. A Tokenizer is
// immutable and is shared by reference between a trie, all of its nodes
// and every trie derived from it via NewFromCurrent.
type Tokenizer struct {
	kind      TokenizerKind
	length    int
	delimiter string

	tokenize   TokenizeFunc
	detokenize DetokenizeFunc

	// key canonicalization applied before tokenizing, see canonical.
	normalize bool
	foldMarks bool
}

// Slice returns a Tokenizer that splits keys into consecutive chunks of
// length grapheme clusters; the last chunk may be shorter. A length of
// one gives classic one-character-per-level behaviour. Chunks never
// split inside a multi-codepoint grapheme cluster.
// WARNING, this function will panic if length is less than one.
func Slice(length int) *Tokenizer {
	if length < 1 {
		panic("trie: slice tokenizer length must be at least 1")
	}
	return &Tokenizer{kind: KindSlice, length: length}
}

// Delimiter returns a Tokenizer that splits keys on the literal
// substring delimiter. Tokens exclude the delimiter and Detokenize
// rejoins them with it. An empty key tokenizes to no tokens at all.
// WARNING, this function will panic if delimiter is the empty string.
func Delimiter(delimiter string) *Tokenizer {
	if delimiter == "" {
		panic("trie: delimiter tokenizer requires a non-empty delimiter")
	}
	return &Tokenizer{kind: KindDelimiter, delimiter: delimiter}
}

// Custom returns a Tokenizer backed by a caller supplied function pair.
// The pair must satisfy detokenize(tokenize(k)) == k for every key k the
// trie will hold; this is not verified, and a pair that breaks the
// contract yields incorrectly reconstructed keys from query results.
// WARNING, this function will panic if either function is nil.
func Custom(tokenize TokenizeFunc, detokenize DetokenizeFunc) *Tokenizer {
	if tokenize == nil || detokenize == nil {
		panic("trie: custom tokenizer requires both a tokenize and a detokenize function")
	}
	return &Tokenizer{kind: KindCustom, tokenize: tokenize, detokenize: detokenize}
}

// Kind reports the strategy this Tokenizer was constructed with.
func (tk *Tokenizer) Kind() TokenizerKind { return tk.kind }

// Tokenize breaks key into an ordered sequence of tokens.
func (tk *Tokenizer) Tokenize(key string) []string {
	key = tk.canonical(key)
	switch tk.kind {
	case KindSlice:
		return sliceGraphemes(key, tk.length)
	case KindDelimiter:
		if key == "" {
			return nil
		}
		return strings.Split(key, tk.delimiter)
	default:
		return tk.tokenize(key)
	}
}

// Detokenize joins tokens back into the key they were produced from.
func (tk *Tokenizer) Detokenize(tokens []string) string {
	switch tk.kind {
	case KindSlice:
		return strings.Join(tokens, "")
	case KindDelimiter:
		return strings.Join(tokens, tk.delimiter)
	default:
		return tk.detokenize(tokens)
	}
}

func (tk *Tokenizer) String() string {
	switch tk.kind {
	case KindSlice:
		return fmt.Sprintf("Slice(%d)", tk.length)
	case KindDelimiter:
		return fmt.Sprintf("Delimiter(%q)", tk.delimiter)
	default:
		return "Custom"
	}
}

// canonicalized returns a copy with the given canonicalization flags.
// The receiver is never mutated, so tries already sharing it are
// unaffected.
func (tk *Tokenizer) canonicalized(normalize, foldMarks bool) *Tokenizer {
	c := *tk
	c.normalize = normalize
	c.foldMarks = foldMarks
	return &c
}

// canonical folds a key into its canonical spelling before tokenizing.
func (tk *Tokenizer) canonical(key string) string {
	switch {
	case tk.foldMarks:
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		folded, _, err := transform.String(transformer, key)
		if err != nil {
			return key
		}
		return folded
	case tk.normalize:
		return norm.NFC.String(key)
	}
	return key
}

// sliceGraphemes gathers grapheme clusters into chunks of length
// clusters each; the trailing chunk keeps whatever is left over.
func sliceGraphemes(key string, length int) []string {
	var tokens []string
	var chunk strings.Builder
	count := 0
	gr := uniseg.NewGraphemes(key)
	for gr.Next() {
		chunk.WriteString(gr.Str())
		count++
		if count == length {
			tokens = append(tokens, chunk.String())
			chunk.Reset()
			count = 0
		}
	}
	if chunk.Len() > 0 {
		tokens = append(tokens, chunk.String())
	}
	return tokens
}
