// Package memory is an in-process stand-in for the remote JSON store. It
// follows the same path semantics: PUT replaces a subtree (null deletes),
// PATCH merges one level deep and empty parents disappear.
package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

type Tree struct {
	mu   sync.RWMutex
	root any
}

func New() *Tree {
	return &Tree{}
}

func splitPath(path string) []string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalize round-trips v through JSON so the tree only holds
// map[string]any, []any and scalar values.
func normalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return prune(out), nil
}

// prune drops null members and empty containers, which the remote store
// never keeps.
func prune(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if c := prune(child); c == nil {
				delete(t, k)
			} else {
				t[k] = c
			}
		}
		if len(t) == 0 {
			return nil
		}
		return t
	case []any:
		empty := true
		for i, child := range t {
			t[i] = prune(child)
			if t[i] != nil {
				empty = false
			}
		}
		if empty {
			return nil
		}
		return t
	default:
		return v
	}
}

func child(node any, key string) any {
	switch t := node.(type) {
	case map[string]any:
		return t[key]
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(t) {
			return nil
		}
		return t[i]
	}
	return nil
}

// set returns node with key replaced by value, converting arrays to maps
// when the key does not address an existing slot.
func set(node any, key string, value any) any {
	switch t := node.(type) {
	case map[string]any:
		if value == nil {
			delete(t, key)
		} else {
			t[key] = value
		}
		return t
	case []any:
		if i, err := strconv.Atoi(key); err == nil && i >= 0 && i < len(t) {
			t[i] = value
			return t
		}
		m := make(map[string]any, len(t)+1)
		for i, v := range t {
			if v != nil {
				m[strconv.Itoa(i)] = v
			}
		}
		return set(m, key, value)
	}
	if value == nil {
		return nil
	}
	return map[string]any{key: value}
}

func setPath(node any, parts []string, value any) any {
	if len(parts) == 0 {
		return value
	}
	next := setPath(child(node, parts[0]), parts[1:], value)
	return prune(set(node, parts[0], next))
}

func (t *Tree) Get(ctx context.Context, path string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, &e.StoreError{Op: "GET", Path: path, Err: err}
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.root
	for _, p := range splitPath(path) {
		node = child(node, p)
		if node == nil {
			return nil, nil
		}
	}
	if node == nil {
		return nil, nil
	}
	b, err := json.Marshal(node)
	if err != nil {
		return nil, &e.StoreError{Op: "GET", Path: path, Err: err}
	}
	return b, nil
}

func (t *Tree) Put(ctx context.Context, path string, value any) error {
	if err := ctx.Err(); err != nil {
		return &e.StoreError{Op: "PUT", Path: path, Err: err}
	}
	v, err := normalize(value)
	if err != nil {
		return &e.StoreError{Op: "PUT", Path: path, Err: err}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.root = setPath(t.root, splitPath(path), v)
	return nil
}

func (t *Tree) Patch(ctx context.Context, path string, value any) error {
	if err := ctx.Err(); err != nil {
		return &e.StoreError{Op: "PATCH", Path: path, Err: err}
	}
	b, err := json.Marshal(value)
	if err != nil {
		return &e.StoreError{Op: "PATCH", Path: path, Err: err}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		return &e.StoreError{Op: "PATCH", Path: path, Status: 400, Err: fmt.Errorf("patch body must be an object")}
	}

	parts := splitPath(path)
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, raw := range fields {
		v, err := normalize(raw)
		if err != nil {
			return &e.StoreError{Op: "PATCH", Path: path, Err: err}
		}
		t.root = setPath(t.root, append(append([]string{}, parts...), splitPath(k)...), v)
	}
	return nil
}

func (t *Tree) Delete(ctx context.Context, path string) error {
	return t.Put(ctx, path, nil)
}

func (t *Tree) Ping(ctx context.Context) error {
	return ctx.Err()
}
