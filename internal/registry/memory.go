package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
)

// Node is one key of an in-memory store tree. Its JSON form is the export
// format read by [LoadMemoryStore]:
//
//	{"keys": {"SOFTWARE": {"keys": {"Maxis": {...}}}}, "values": {"InstallDir": "C:\\Games"}}
type Node struct {
	Values  map[string]string `json:"values,omitempty"`
	SubKeys map[string]*Node  `json:"keys,omitempty"`
}

// NewNode returns an empty key.
func NewNode() *Node {
	return &Node{}
}

// Add returns the subkey name of n, creating it when missing. The lookup
// ignores case, so Add("software") reuses an existing "SOFTWARE".
func (n *Node) Add(name string) *Node {
	if child, ok := n.child(name); ok {
		return child
	}
	if n.SubKeys == nil {
		n.SubKeys = make(map[string]*Node)
	}
	child := NewNode()
	n.SubKeys[name] = child
	return child
}

// AddPath creates every level of a `\` or `/` separated path below n and
// returns the deepest key.
func (n *Node) AddPath(path string) *Node {
	current := n
	for _, name := range SplitPath(path) {
		current = current.Add(name)
	}
	return current
}

// SetValue stores a string value and returns n for chaining.
func (n *Node) SetValue(name, value string) *Node {
	if n.Values == nil {
		n.Values = make(map[string]string)
	}
	n.Values[name] = value
	return n
}

func (n *Node) child(name string) (*Node, bool) {
	for k, v := range n.SubKeys {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

func (n *Node) value(name string) (string, bool) {
	for k, v := range n.Values {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// MemoryStore is a [Store] over a [Node] tree. It is safe for concurrent
// reads; the tree must not be modified while keys are open.
type MemoryStore struct {
	root *Node
}

// NewMemoryStore wraps root. A nil root behaves as an empty store.
func NewMemoryStore(root *Node) *MemoryStore {
	if root == nil {
		root = NewNode()
	}
	return &MemoryStore{root: root}
}

// LoadMemoryStore reads a JSON export from path.
func LoadMemoryStore(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading registry export: %w", err)
	}

	root := NewNode()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("error decoding registry export: %w", err)
	}

	return NewMemoryStore(root), nil
}

// Open returns the key at path. An empty path opens the hive itself.
func (s *MemoryStore) Open(path string) (Key, error) {
	current := s.root
	for _, name := range SplitPath(path) {
		next, ok := current.child(name)
		if !ok {
			return nil, fmt.Errorf("open %q: %w", path, ErrKeyNotFound)
		}
		current = next
	}
	return &memoryKey{node: current}, nil
}

type memoryKey struct {
	mu     sync.Mutex
	node   *Node
	closed bool
}

func (k *memoryKey) SubKeyNames() ([]string, error) {
	if err := k.check(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(k.node.SubKeys))
	for name := range k.node.SubKeys {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (k *memoryKey) OpenSubKey(name string) (Key, error) {
	if err := k.check(); err != nil {
		return nil, err
	}

	child, ok := k.node.child(name)
	if !ok {
		return nil, fmt.Errorf("open subkey %q: %w", name, ErrKeyNotFound)
	}
	return &memoryKey{node: child}, nil
}

func (k *memoryKey) StringValue(name string) (string, error) {
	if err := k.check(); err != nil {
		return "", err
	}

	v, ok := k.node.value(name)
	if !ok {
		return "", fmt.Errorf("value %q: %w", name, ErrValueNotFound)
	}
	return v, nil
}

func (k *memoryKey) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return ErrKeyClosed
	}
	k.closed = true
	return nil
}

func (k *memoryKey) check() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return ErrKeyClosed
	}
	return nil
}
