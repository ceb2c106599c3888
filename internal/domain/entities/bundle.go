package entities

import (
	"sort"
	"strings"
)

// KeySeparator splits a key-path into its segments.
const KeySeparator = "."

// Bundle maps a locale code to its nested translation tree.
type Bundle map[string]map[string]any

// Locales returns the bundle's locale codes in sorted order.
func (b Bundle) Locales() []string {
	out := make([]string, 0, len(b))
	for locale := range b {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Merge deep-merges messages into the locale's tree. Nested objects merge
// recursively; any other collision is resolved in favour of messages.
func (b Bundle) Merge(locale string, messages map[string]any) {
	tree, ok := b[locale]
	if !ok {
		tree = make(map[string]any, len(messages))
		b[locale] = tree
	}
	mergeTree(tree, messages)
}

func mergeTree(dst, src map[string]any) {
	for key, value := range src {
		incoming, isObject := value.(map[string]any)
		if !isObject {
			dst[key] = value
			continue
		}
		existing, ok := dst[key].(map[string]any)
		if !ok {
			existing = make(map[string]any, len(incoming))
			dst[key] = existing
		}
		mergeTree(existing, incoming)
	}
}

// Lookup walks tree along keyPath. It reports false when a segment is
// missing, when an intermediate node is not an object, or when the final
// value is not a string.
func Lookup(tree map[string]any, keyPath string) (string, bool) {
	if keyPath == "" {
		return "", false
	}
	segments := strings.Split(keyPath, KeySeparator)
	node := tree
	for i, segment := range segments {
		value, ok := node[segment]
		if !ok {
			return "", false
		}
		if i == len(segments)-1 {
			s, isString := value.(string)
			return s, isString
		}
		next, isObject := value.(map[string]any)
		if !isObject {
			return "", false
		}
		node = next
	}
	return "", false
}

// KeyPaths returns the sorted key-paths of every string leaf in tree.
func KeyPaths(tree map[string]any) []string {
	var out []string
	collectKeyPaths(tree, "", &out)
	sort.Strings(out)
	return out
}

// Flatten returns every string leaf of tree keyed by its key-path.
func Flatten(tree map[string]any) map[string]string {
	out := make(map[string]string)
	for _, path := range KeyPaths(tree) {
		value, _ := Lookup(tree, path)
		out[path] = value
	}
	return out
}

func collectKeyPaths(node map[string]any, prefix string, out *[]string) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + KeySeparator + key
		}
		switch v := value.(type) {
		case string:
			*out = append(*out, path)
		case map[string]any:
			collectKeyPaths(v, path, out)
		}
	}
}
