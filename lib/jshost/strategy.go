// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jshost

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dop251/goja"

	"github.com/bureau-foundation/cfgresolve/lib/bundle"
)

// Strategy loads a bundle into a Host and returns the module's export.
// The set of strategies is closed: [TemporaryFileImport] for
// module-style bundles and [HandlerInterception] for classic-style
// ones.
type Strategy interface {
	String() string
	load(h *Host, vm *goja.Runtime, path string, code []byte) (goja.Value, error)
}

// StrategyFor returns the strategy matching a classifier verdict.
func StrategyFor(moduleStyle bool) Strategy {
	if moduleStyle {
		return TemporaryFileImport{}
	}
	return HandlerInterception{}
}

// TemporaryFileImport materializes a module-style bundle beside the
// original file and imports it by URL.
type TemporaryFileImport struct{}

func (TemporaryFileImport) String() string { return "temporary-file-import" }

func (TemporaryFileImport) load(h *Host, vm *goja.Runtime, path string, code []byte) (goja.Value, error) {
	base, err := temporaryBase(h, path)
	if err != nil {
		return nil, err
	}
	temporaryPath := base + ".mjs"
	moduleURL := bundle.FileURL(base) + ".mjs"

	if err := os.WriteFile(temporaryPath, code, 0o644); err != nil {
		return nil, fmt.Errorf("writing temporary bundle: %w", err)
	}
	defer func() {
		if err := os.Remove(temporaryPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			h.logger.Debug("leaving temporary bundle behind",
				"path", temporaryPath,
				"error", err,
			)
		}
	}()

	namespace, err := h.importURL(vm, moduleURL)
	if err != nil {
		return nil, err
	}
	object, ok := namespace.(*goja.Object)
	if !ok {
		return goja.Undefined(), nil
	}
	return property(object, "default"), nil
}

// temporaryBase returns "<path>.timestamp-<unix ms>-<random hex>".
// Timestamp plus 64 random bits keeps concurrent resolutions of the
// same file from colliding.
func temporaryBase(h *Host, path string) (string, error) {
	var random [8]byte
	if _, err := rand.Read(random[:]); err != nil {
		return "", fmt.Errorf("generating temporary bundle name: %w", err)
	}
	return fmt.Sprintf("%s.timestamp-%d-%s", path, h.clock.Now().UnixMilli(), hex.EncodeToString(random[:])), nil
}

// HandlerInterception serves a classic-style bundle in place of the
// original file's source for the duration of one require call.
type HandlerInterception struct{}

func (HandlerInterception) String() string { return "handler-interception" }

func (HandlerInterception) load(h *Host, vm *goja.Runtime, path string, code []byte) (goja.Value, error) {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, fmt.Errorf("resolving real path of %s: %w", path, err)
	}

	h.section.Lock()
	defer h.section.Unlock()

	extension := h.handlers.extensionFor(path)
	var previous sourceHandler
	previous = h.handlers.swap(extension, func(filename string) ([]byte, error) {
		if sameFile(filename, realPath) {
			return code, nil
		}
		return previous(filename)
	})
	defer h.handlers.swap(extension, previous)

	raw, err := h.require(vm, path)
	if err != nil {
		return nil, err
	}
	return unwrapDefault(raw), nil
}

// unwrapDefault returns raw.default when raw is an ES module compiled
// to CommonJS (it carries a truthy __esModule), otherwise raw.
func unwrapDefault(raw goja.Value) goja.Value {
	object, ok := raw.(*goja.Object)
	if !ok {
		return raw
	}
	if marker := object.Get("__esModule"); marker != nil && marker.ToBoolean() {
		return property(object, "default")
	}
	return raw
}

// property reads name from object, mapping a missing property to
// undefined.
func property(object *goja.Object, name string) goja.Value {
	if value := object.Get(name); value != nil {
		return value
	}
	return goja.Undefined()
}
