// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jshost

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/eventloop"
	"github.com/dop251/goja_nodejs/process"
	"github.com/dop251/goja_nodejs/require"
	gojaurl "github.com/dop251/goja_nodejs/url"
	"github.com/evanw/esbuild/pkg/api"

	"github.com/bureau-foundation/cfgresolve/lib/bundle"
	"github.com/bureau-foundation/cfgresolve/lib/clock"
)

// ErrHostUsed is returned when Execute is called on a Host that has
// already executed a bundle.
var ErrHostUsed = errors.New("jshost: host already executed a bundle")

// Options configures a Host.
type Options struct {
	// Mode is exposed to config code as process.env.NODE_ENV.
	Mode string

	// Logger receives console output from config code and cleanup
	// diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// Clock stamps temporary bundle file names. Defaults to clock.Real().
	Clock clock.Clock
}

// Host is a single-use JavaScript runtime for one config resolution.
// It is not safe for concurrent use; build one Host per resolution.
type Host struct {
	mode   string
	logger *slog.Logger
	clock  clock.Clock

	loop     *eventloop.EventLoop
	handlers *handlerTable

	// section serializes handler install → require → restore.
	section sync.Mutex

	used atomic.Bool

	// vm is captured on the first loop run.
	vm *goja.Runtime
}

// New builds a Host with a fresh runtime and empty module cache.
func New(options Options) *Host {
	host := &Host{
		mode:   options.Mode,
		logger: options.Logger,
		clock:  options.Clock,
	}
	if host.logger == nil {
		host.logger = slog.Default()
	}
	if host.clock == nil {
		host.clock = clock.Real()
	}
	host.handlers = newHandlerTable(host.loadModuleSource)

	registry := require.NewRegistry(require.WithLoader(host.handlers.load))
	registry.RegisterNativeModule(console.ModuleName, console.RequireWithPrinter(consolePrinter{logger: host.logger}))
	registry.RegisterNativeModule("path", requirePath)
	registry.RegisterNativeModule("node:path", requirePath)
	registry.RegisterNativeModule("fs", requireFS)
	registry.RegisterNativeModule("node:fs", requireFS)
	registry.RegisterNativeModule("os", requireOS)
	registry.RegisterNativeModule("node:os", requireOS)
	registry.RegisterNativeModule(gojaurl.ModuleName, requireURL)
	registry.RegisterNativeModule("node:"+gojaurl.ModuleName, requireURL)
	registry.RegisterNativeModule(SelfModuleName, requireSelf)

	host.loop = eventloop.NewEventLoop(
		eventloop.WithRegistry(registry),
		eventloop.EnableConsole(false),
	)
	return host
}

// Execute loads bundled code for the config at path using strategy and
// returns the raw, uninvoked export. A Host executes at most one
// bundle; later calls return ErrHostUsed.
func (h *Host) Execute(ctx context.Context, path string, code []byte, strategy Strategy) (*Export, error) {
	if !h.used.CompareAndSwap(false, true) {
		return nil, ErrHostUsed
	}
	var value goja.Value
	err := h.run(ctx, func(vm *goja.Runtime) error {
		loaded, err := strategy.load(h, vm, path, code)
		value = loaded
		return err
	})
	if err != nil {
		return nil, &ExecutionError{Path: path, Err: err}
	}
	h.logger.Debug("executed config bundle", "path", path, "strategy", strategy.String())
	return &Export{host: h, path: path, value: value}, nil
}

// run executes fn on the event loop and keeps the loop going until no
// timers or promise jobs remain. Cancelling ctx interrupts any running
// script.
func (h *Host) run(ctx context.Context, fn func(vm *goja.Runtime) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var (
		err  error
		stop func() bool
	)
	h.loop.Run(func(vm *goja.Runtime) {
		h.prepare(vm)
		stop = context.AfterFunc(ctx, func() {
			vm.Interrupt(context.Cause(ctx))
		})
		err = fn(vm)
	})
	if stop != nil {
		stop()
	}
	if ctxErr := ctx.Err(); ctxErr != nil && err == nil {
		err = ctxErr
	}
	return err
}

// prepare installs globals on the first run.
func (h *Host) prepare(vm *goja.Runtime) {
	if h.vm != nil {
		return
	}
	h.vm = vm
	vm.SetFieldNameMapper(fieldNameMapper{})
	console.Enable(vm)
	process.Enable(vm)
	gojaurl.Enable(vm)

	if processObject, ok := vm.Get("process").(*goja.Object); ok {
		if env, ok := processObject.Get("env").(*goja.Object); ok {
			if err := env.Set("NODE_ENV", h.mode); err != nil {
				h.logger.Warn("cannot set process.env.NODE_ENV", "error", err)
			}
		}
	}
}

// require invokes the runtime's global require with path.
func (h *Host) require(vm *goja.Runtime, path string) (goja.Value, error) {
	requireFunction, ok := goja.AssertFunction(vm.Get("require"))
	if !ok {
		return nil, errors.New("jshost: runtime has no require function")
	}
	return requireFunction(goja.Undefined(), vm.ToValue(path))
}

// importURL loads the module at a file:// URL.
func (h *Host) importURL(vm *goja.Runtime, moduleURL string) (goja.Value, error) {
	path, err := pathFromFileURL(moduleURL)
	if err != nil {
		return nil, err
	}
	return h.require(vm, path)
}

// loadModuleSource is the ".mjs" handler: read the file and rewrite ES
// module syntax to CommonJS the runtime can evaluate.
func (h *Host) loadModuleSource(filename string) ([]byte, error) {
	source, err := require.DefaultSourceLoader(filename)
	if err != nil {
		return nil, err
	}
	result := api.Transform(string(source), api.TransformOptions{
		Loader:     api.LoaderJS,
		Format:     api.FormatCommonJS,
		Target:     bundle.Target,
		Sourcefile: filename,
		LogLevel:   api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return nil, &bundle.Error{Entry: filename, Messages: result.Errors}
	}
	return result.Code, nil
}

// pathFromFileURL converts a file:// URL back to a filesystem path.
func pathFromFileURL(moduleURL string) (string, error) {
	parsed, err := url.Parse(moduleURL)
	if err != nil {
		return "", fmt.Errorf("parsing module URL %q: %w", moduleURL, err)
	}
	if parsed.Scheme != "file" {
		return "", fmt.Errorf("module URL %q: only file:// URLs can be imported", moduleURL)
	}
	path := parsed.Path
	// "/C:/dir/file.mjs" on Windows.
	if runtime.GOOS == "windows" && len(path) > 2 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

// sameFile reports whether candidate names the file whose
// symlink-resolved path is realPath.
func sameFile(candidate, realPath string) bool {
	if candidate == realPath {
		return true
	}
	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return false
	}
	if runtime.GOOS == "windows" {
		return strings.EqualFold(resolved, realPath)
	}
	return resolved == realPath
}
