// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jshost

import (
	"path/filepath"
	"sync"

	"github.com/dop251/goja_nodejs/require"
)

// sourceHandler returns the source text for a module file. It returns
// require.ModuleFileDoesNotExistError when filename is absent so the
// runtime keeps probing other candidates.
type sourceHandler func(filename string) ([]byte, error)

// defaultExtension receives files whose extension has no handler.
const defaultExtension = ".js"

// handlerTable maps file extensions to source handlers. The map itself
// is guarded by mu; higher-level swap sequences are serialized by the
// Host's section lock.
type handlerTable struct {
	mu       sync.RWMutex
	handlers map[string]sourceHandler
}

func newHandlerTable(moduleHandler sourceHandler) *handlerTable {
	return &handlerTable{
		handlers: map[string]sourceHandler{
			".js":   require.DefaultSourceLoader,
			".json": require.DefaultSourceLoader,
			".mjs":  moduleHandler,
		},
	}
}

// load is the registry's source loader.
func (t *handlerTable) load(filename string) ([]byte, error) {
	return t.get(t.extensionFor(filename))(filename)
}

// extensionFor returns the table key used for filename: its own
// extension if registered, otherwise ".js".
func (t *handlerTable) extensionFor(filename string) string {
	extension := filepath.Ext(filename)
	t.mu.RLock()
	defer t.mu.RUnlock()
	if _, ok := t.handlers[extension]; ok {
		return extension
	}
	return defaultExtension
}

func (t *handlerTable) get(extension string) sourceHandler {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.handlers[extension]
}

// swap installs handler for extension and returns the one it replaced.
func (t *handlerTable) swap(extension string, handler sourceHandler) sourceHandler {
	t.mu.Lock()
	defer t.mu.Unlock()
	previous := t.handlers[extension]
	t.handlers[extension] = handler
	return previous
}
