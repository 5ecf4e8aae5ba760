package trie

import (
	"sort"
	"strings"
)

// Trie is a prefix tree whose levels are tokens rather than characters.
// Every node is itself a Trie rooted at its own token, so the methods
// below work equally on the whole tree and on any subtree returned by
// Get or FuzzyGet. The root node carries the empty token and always
// exists, even when nothing is stored.
//
// A Trie is not safe for concurrent use; callers sharing one across
// goroutines must serialize mutating calls externally.
type Trie[T any] struct {
	token     string
	children  map[string]*Trie[T]
	data      T
	hasData   bool
	isKeyEnd  bool
	tokenizer *Tokenizer
}

func newNode[T any](token string, tk *Tokenizer) *Trie[T] {
	return &Trie[T]{
		token:     token,
		children:  make(map[string]*Trie[T]),
		tokenizer: tk,
	}
}

// New creates a trie that tokenizes keys one grapheme cluster at a time,
// equivalent to NewWithSlice[T](1).
func New[T any]() *Trie[T] {
	return NewWithTokenizer[T](Slice(1))
}

// NewWithSlice creates a trie whose keys are split into chunks of length
// grapheme clusters per level.
func NewWithSlice[T any](length int) *Trie[T] {
	return NewWithTokenizer[T](Slice(length))
}

// NewWithDelimiter creates a trie whose keys are split on the literal
// substring delimiter.
func NewWithDelimiter[T any](delimiter string) *Trie[T] {
	return NewWithTokenizer[T](Delimiter(delimiter))
}

// NewWithCustomTokenization creates a trie whose keys are split and
// rejoined by the given function pair. See Custom for the contract the
// pair must satisfy.
func NewWithCustomTokenization[T any](tokenize TokenizeFunc, detokenize DetokenizeFunc) *Trie[T] {
	return NewWithTokenizer[T](Custom(tokenize, detokenize))
}

// NewWithTokenizer creates a trie using an already constructed
// Tokenizer. The tokenizer may be shared between several tries.
func NewWithTokenizer[T any](tk *Tokenizer) *Trie[T] {
	return newNode[T]("", tk)
}

// NewFromCurrent returns a new empty trie sharing the receiver's
// tokenizer. Stored keys are not copied, and the shared tokenizer is
// not duplicated, which keeps custom function pairs intact.
func (t *Trie[T]) NewFromCurrent() *Trie[T] {
	return newNode[T]("", t.tokenizer)
}

// WithNormalization makes the trie fold keys to Unicode NFC before
// tokenizing, so composed and decomposed spellings of the same text
// share one node path. Keys come back from queries in composed form,
// and the tokenizer round trip then holds against the composed key.
// Configure this before the first key is added.
func (t *Trie[T]) WithNormalization() *Trie[T] {
	t.tokenizer = t.tokenizer.canonicalized(true, t.tokenizer.foldMarks)
	return t
}

// WithDiacriticFolding makes the trie strip combining marks from keys
// before tokenizing, so for example Jürgen and Jurgen share one node
// path. Configure this before the first key is added.
func (t *Trie[T]) WithDiacriticFolding() *Trie[T] {
	t.tokenizer = t.tokenizer.canonicalized(t.tokenizer.normalize, true)
	return t
}

// Token returns the token this node represents; the root's token is the
// empty string.
func (t *Trie[T]) Token() string { return t.token }

// Data returns the payload stored at this node and whether one is
// present. A stored key may deliberately carry no payload.
func (t *Trie[T]) Data() (T, bool) { return t.data, t.hasData }

// IsKeyEnd reports whether this node terminates an explicitly added
// key, as opposed to merely sitting on the path of a longer one.
func (t *Trie[T]) IsKeyEnd() bool { return t.isKeyEnd }

// Tokenizer returns the shared tokenizer configuration.
func (t *Trie[T]) Tokenizer() *Tokenizer { return t.tokenizer }

// Child returns the direct child holding token, if any.
func (t *Trie[T]) Child(token string) (*Trie[T], bool) {
	child, ok := t.children[token]
	return child, ok
}

// ChildTokens returns the tokens of the direct children in lexicographic
// order.
func (t *Trie[T]) ChildTokens() []string {
	tokens := make([]string, 0, len(t.children))
	for token := range t.children {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Add stores each key with no payload attached. Adding a key that
// already holds a payload clears it.
func (t *Trie[T]) Add(keys ...string) {
	var zero T
	for _, key := range keys {
		t.put(key, zero, false)
	}
}

// AddWithData stores key with the given payload, overwriting any prior
// payload.
func (t *Trie[T]) AddWithData(key string, data T) {
	t.put(key, data, true)
}

// BulkAddWithData stores every key in entries with its payload.
func (t *Trie[T]) BulkAddWithData(entries map[string]T) {
	for key, data := range entries {
		t.put(key, data, true)
	}
}

func (t *Trie[T]) put(key string, data T, hasData bool) {
	current := t
	for _, token := range t.tokenizer.Tokenize(key) {
		child, ok := current.children[token]
		if !ok {
			child = newNode[T](token, t.tokenizer)
			current.children[token] = child
		}
		current = child
	}
	current.data = data
	current.hasData = hasData
	current.isKeyEnd = true
}

// Remove deletes key and its payload, then prunes nodes left on the
// key's path that store nothing and have no children, stopping at the
// first node still in use. Removing a key that was never added is a
// no-op. The root is never pruned.
func (t *Trie[T]) Remove(key string) {
	tokens := t.tokenizer.Tokenize(key)
	path := make([]*Trie[T], 0, len(tokens)+1)
	path = append(path, t)
	current := t
	for _, token := range tokens {
		next, ok := current.children[token]
		if !ok {
			return
		}
		current = next
		path = append(path, current)
	}
	if !current.isKeyEnd {
		return
	}
	var zero T
	current.data = zero
	current.hasData = false
	current.isKeyEnd = false
	// prune
	for i := len(tokens); i > 0; i-- {
		child := path[i]
		if child.isKeyEnd || len(child.children) > 0 {
			break
		}
		delete(path[i-1].children, tokens[i-1])
	}
}

// Exists reports whether key was explicitly added. Nodes that only sit
// on the path of a longer key do not count; a key added without a
// payload does.
func (t *Trie[T]) Exists(key string) bool {
	node, ok := t.Get(key)
	return ok && node.isKeyEnd
}

// Get resolves key's token path and returns the subtree at its end,
// whether or not that node terminates a stored key. The returned
// pointer shares structure with the trie, so mutating it mutates the
// trie.
func (t *Trie[T]) Get(key string) (*Trie[T], bool) {
	current := t
	for _, token := range t.tokenizer.Tokenize(key) {
		next, ok := current.children[token]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// KeysWithPrefix returns every stored key beginning with prefix, in
// lexicographic order. The prefix must tokenize to an exact node path:
// with a Slice(2) trie holding "abcdef", "abcd" matches but "abc" does
// not, because "abc" cannot be tokenized onto a chunk boundary. An
// empty prefix lists every stored key.
func (t *Trie[T]) KeysWithPrefix(prefix string) []string {
	tokens := t.tokenizer.Tokenize(prefix)
	current := t
	for _, token := range tokens {
		next, ok := current.children[token]
		if !ok {
			return nil
		}
		current = next
	}
	var keys []string
	current.collectKeys(tokens, &keys)
	sort.Strings(keys)
	return keys
}

// KeysContaining returns every stored key containing substr anywhere in
// its string form, in lexicographic order. Unlike KeysWithPrefix the
// match is not anchored: "ball" finds both "football" and "basketball".
func (t *Trie[T]) KeysContaining(substr string) []string {
	substr = t.tokenizer.canonical(substr)
	var all []string
	t.collectKeys(nil, &all)
	keys := make([]string, 0, len(all))
	for _, key := range all {
		if strings.Contains(key, substr) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// FuzzyGet resolves every token of key except the last exactly, then
// returns the subtree of each child of the resolved node whose token
// begins with the last token. This completes a partially typed final
// token one level below full-key granularity: in a Delimiter("_") trie
// holding "usr_local" and "usr_share", FuzzyGet("usr_l") returns the
// subtree under "local". Results are ordered by token. An empty key or
// an unresolvable parent path returns nothing.
func (t *Trie[T]) FuzzyGet(key string) []*Trie[T] {
	tokens := t.tokenizer.Tokenize(key)
	if len(tokens) == 0 {
		return nil
	}
	last := tokens[len(tokens)-1]
	current := t
	for _, token := range tokens[:len(tokens)-1] {
		next, ok := current.children[token]
		if !ok {
			return nil
		}
		current = next
	}
	matched := make([]string, 0, len(current.children))
	for token := range current.children {
		if strings.HasPrefix(token, last) {
			matched = append(matched, token)
		}
	}
	sort.Strings(matched)
	tries := make([]*Trie[T], 0, len(matched))
	for _, token := range matched {
		tries = append(tries, current.children[token])
	}
	return tries
}

// collectKeys gathers the reconstructed key of every key-end node in
// this subtree. tokens holds the token path from the trie root down to
// the receiver.
func (t *Trie[T]) collectKeys(tokens []string, keys *[]string) {
	if t.isKeyEnd {
		*keys = append(*keys, t.tokenizer.Detokenize(tokens))
	}
	for token, child := range t.children {
		child.collectKeys(append(tokens, token), keys)
	}
}
