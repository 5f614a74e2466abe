package fontregistry

import (
	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/sets/treeset"
	"golang.org/x/text/cases"
)

// FamilySet is an immutable set of font family names.
//
// Contains matches names exactly, Lookup and WithPrefix ignore case.
type FamilySet struct {
	names  *treeset.Set      // sorted family names, as spelled by the host
	folded map[string]string // case-folded name -> host spelling
	index  *trie.Trie        // case-folded names
}

// NewFamilySet creates a set from a list of family names. Duplicates and
// empty names are dropped.
func NewFamilySet(names []string) *FamilySet {
	fs := &FamilySet{
		names:  treeset.NewWithStringComparator(),
		folded: make(map[string]string, len(names)),
		index:  trie.New(),
	}
	for _, name := range names {
		if name == "" || fs.names.Contains(name) {
			continue
		}
		fs.names.Add(name)
		key := fold(name)
		if _, ok := fs.folded[key]; !ok {
			fs.folded[key] = name
			fs.index.Add(key, nil)
		}
	}
	return fs
}

// Len returns the number of family names in the set.
func (fs *FamilySet) Len() int {
	return fs.names.Size()
}

// Contains is true if name is contained in the set, spelled exactly as given.
func (fs *FamilySet) Contains(name string) bool {
	return fs.names.Contains(name)
}

// Lookup searches for a family name regardless of case and returns the name
// as spelled by the host.
func (fs *FamilySet) Lookup(name string) (string, bool) {
	n, ok := fs.folded[fold(name)]
	return n, ok
}

// Names returns all family names in sorted order.
func (fs *FamilySet) Names() []string {
	names := make([]string, 0, fs.names.Size())
	for _, v := range fs.names.Values() {
		names = append(names, v.(string))
	}
	return names
}

// WithPrefix returns the family names starting with prefix, regardless of case.
// Names are returned as spelled by the host.
func (fs *FamilySet) WithPrefix(prefix string) []string {
	keys := fs.index.PrefixSearch(fold(prefix))
	r := treeset.NewWithStringComparator()
	for _, k := range keys {
		r.Add(fs.folded[k])
	}
	names := make([]string, 0, r.Size())
	for _, v := range r.Values() {
		names = append(names, v.(string))
	}
	return names
}

// Casers are stateful, so we must not share one between goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}
