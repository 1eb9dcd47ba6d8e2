package desktopfs

import (
	"strings"
	"unicode/utf8"

	"github.com/Project-Sylos/Desktop98/internal/metrics"
	"github.com/Project-Sylos/Desktop98/internal/types"
)

// MinIndexedLength is the shortest substring stored in the substring indices.
// Shorter queries are answered by a full traversal of the search tree.
const MinIndexedLength = 3

// node is a search tree node ordered by entry name
type node struct {
	entry *types.Entry
	path  []string
	left  *node
	right *node
}

// Index is a binary search tree keyed by entry name, paired with a
// case-sensitive and a case-insensitive substring index.
// It is built once and read-only afterwards.
type Index struct {
	root        *node
	size        int
	sensitive   map[string][]types.SearchResult
	insensitive map[string][]types.SearchResult
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{
		sensitive:   make(map[string][]types.SearchResult),
		insensitive: make(map[string][]types.SearchResult),
	}
}

// Build inserts every reachable entry of the forest in pre-order.
// Drives and cd-roms are traversed but not inserted; their names still
// appear as path segments of their descendants.
func (idx *Index) Build(forest []*types.Entry) {
	idx.root = nil
	idx.size = 0
	idx.sensitive = make(map[string][]types.SearchResult)
	idx.insensitive = make(map[string][]types.SearchResult)

	idx.traverse(forest, nil)

	metrics.SetIndexSize(idx.size, len(idx.sensitive), len(idx.insensitive))
}

func (idx *Index) traverse(entries []*types.Entry, parentPath []string) {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		path := make([]string, len(parentPath)+1)
		copy(path, parentPath)
		path[len(parentPath)] = entry.Name

		if !entry.Kind.IsVolume() {
			idx.insert(entry, path)
		}
		if len(entry.Children) > 0 {
			idx.traverse(entry.Children, path)
		}
	}
}

// insert adds an entry to the tree and to both substring indices
func (idx *Index) insert(entry *types.Entry, path []string) {
	newNode := &node{entry: entry, path: path}
	idx.size++

	if idx.root == nil {
		idx.root = newNode
	} else {
		current := idx.root
		for {
			if entry.Name < current.entry.Name {
				if current.left == nil {
					current.left = newNode
					break
				}
				current = current.left
			} else {
				if current.right == nil {
					current.right = newNode
					break
				}
				current = current.right
			}
		}
	}

	result := types.SearchResult{Entry: entry, Path: path}
	addSubstrings(idx.sensitive, entry.Name, result)
	addSubstrings(idx.insensitive, strings.ToLower(entry.Name), result)
}

// addSubstrings appends result to the bucket of every substring of name
// that is at least MinIndexedLength runes long.
func addSubstrings(index map[string][]types.SearchResult, name string, result types.SearchResult) {
	runes := []rune(name)
	for i := 0; i <= len(runes)-MinIndexedLength; i++ {
		for j := i + MinIndexedLength; j <= len(runes); j++ {
			key := string(runes[i:j])
			index[key] = append(index[key], result)
		}
	}
}

// SearchExact walks the tree for an entry named name.
// The walk follows tree order even when comparing lower-cased names.
func (idx *Index) SearchExact(name string, caseSensitive bool) types.SearchResult {
	metrics.RecordSearch(metrics.StrategyExact, caseSensitive)

	searchName := fold(name, caseSensitive)
	current := idx.root
	for current != nil {
		currentName := fold(current.entry.Name, caseSensitive)
		switch {
		case searchName == currentName:
			return types.SearchResult{Entry: current.entry, Path: current.path}
		case searchName < currentName:
			current = current.left
		default:
			current = current.right
		}
	}

	return types.SearchResult{Path: []string{}}
}

// SearchBySubstring returns every entry whose name contains query.
// Queries of at least MinIndexedLength runes are answered from the index
// only, an absent bucket yields an empty list. Shorter queries traverse the
// whole tree in pre-order.
func (idx *Index) SearchBySubstring(query string, caseSensitive bool) []types.SearchResult {
	searchSub := fold(query, caseSensitive)

	if utf8.RuneCountInString(searchSub) >= MinIndexedLength {
		metrics.RecordSearch(metrics.StrategyIndex, caseSensitive)
		index := idx.insensitive
		if caseSensitive {
			index = idx.sensitive
		}
		bucket := index[searchSub]
		results := make([]types.SearchResult, len(bucket))
		copy(results, bucket)
		return results
	}

	metrics.RecordSearch(metrics.StrategyTraversal, caseSensitive)
	return idx.traverseForSubstring(searchSub, caseSensitive)
}

// traverseForSubstring collects matches node, left, right
func (idx *Index) traverseForSubstring(substring string, caseSensitive bool) []types.SearchResult {
	results := []types.SearchResult{}
	if idx.root == nil {
		return results
	}

	// Explicit stack: a tree built from sorted names degenerates into a list
	stack := []*node{idx.root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if strings.Contains(fold(current.entry.Name, caseSensitive), substring) {
			results = append(results, types.SearchResult{Entry: current.entry, Path: current.path})
		}
		if current.right != nil {
			stack = append(stack, current.right)
		}
		if current.left != nil {
			stack = append(stack, current.left)
		}
	}
	return results
}

// Len returns the number of entries in the tree
func (idx *Index) Len() int {
	return idx.size
}

// BucketCount returns the number of substring buckets of a case mode
func (idx *Index) BucketCount(caseSensitive bool) int {
	if caseSensitive {
		return len(idx.sensitive)
	}
	return len(idx.insensitive)
}

func fold(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}
