/*
Package trie provides a generic prefix tree over tokenized string keys.
Instead of splitting keys one character at a time, keys are broken into
tokens by a pluggable Tokenizer: fixed-length grapheme cluster slices,
a literal delimiter, or a user supplied function pair. Each token
occupies one level of the tree, and optional payload data of any type
can be attached to a stored key.
*/
package trie
