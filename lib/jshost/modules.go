// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jshost

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/buffer"
	gojaurl "github.com/dop251/goja_nodejs/url"

	"github.com/bureau-foundation/cfgresolve/lib/bundle"
)

// SelfModuleName is the import specifier under which config code finds
// the resolver's helpers:
//
//	import { defineConfig } from "cfgresolve"
//
//	export default defineConfig(({ mode }) => ({ debug: mode !== "production" }))
const SelfModuleName = "cfgresolve"

// requireSelf exports defineConfig, an identity function that exists so
// editors can infer config types.
func requireSelf(vm *goja.Runtime, module *goja.Object) {
	exports := module.Get("exports").(*goja.Object)
	_ = exports.Set("defineConfig", func(call goja.FunctionCall) goja.Value {
		return call.Argument(0)
	})
}

// requirePath provides the commonly used part of Node's path module,
// backed by path/filepath.
func requirePath(vm *goja.Runtime, module *goja.Object) {
	exports := module.Get("exports").(*goja.Object)
	_ = exports.Set("sep", string(filepath.Separator))
	_ = exports.Set("delimiter", string(os.PathListSeparator))
	_ = exports.Set("join", func(parts ...string) string {
		joined := filepath.Join(parts...)
		if joined == "" {
			return "."
		}
		return joined
	})
	_ = exports.Set("resolve", func(parts ...string) string {
		resolved := ""
		for index := len(parts) - 1; index >= 0; index-- {
			if parts[index] == "" {
				continue
			}
			resolved = filepath.Join(parts[index], resolved)
			if filepath.IsAbs(resolved) {
				return filepath.Clean(resolved)
			}
		}
		absolute, err := filepath.Abs(resolved)
		if err != nil {
			panic(vm.NewGoError(err))
		}
		return absolute
	})
	_ = exports.Set("normalize", filepath.Clean)
	_ = exports.Set("isAbsolute", filepath.IsAbs)
	_ = exports.Set("dirname", filepath.Dir)
	_ = exports.Set("extname", filepath.Ext)
	_ = exports.Set("basename", func(path string, suffix ...string) string {
		base := filepath.Base(path)
		if len(suffix) > 0 && suffix[0] != base {
			base = strings.TrimSuffix(base, suffix[0])
		}
		return base
	})
	_ = exports.Set("relative", func(from, to string) string {
		from, err := filepath.Abs(from)
		if err != nil {
			panic(vm.NewGoError(err))
		}
		to, err = filepath.Abs(to)
		if err != nil {
			panic(vm.NewGoError(err))
		}
		relative, err := filepath.Rel(from, to)
		if err != nil {
			panic(vm.NewGoError(err))
		}
		if relative == "." {
			return ""
		}
		return relative
	})
}

// requireFS provides synchronous reads: readFileSync and existsSync.
// Paths may be strings or file: URLs; relative paths resolve against
// the working directory.
func requireFS(vm *goja.Runtime, module *goja.Object) {
	exports := module.Get("exports").(*goja.Object)
	_ = exports.Set("readFileSync", func(call goja.FunctionCall) goja.Value {
		path, err := fsPath(call.Argument(0))
		if err != nil {
			panic(vm.NewGoError(err))
		}
		data, err := os.ReadFile(path)
		if err != nil {
			panic(vm.NewGoError(err))
		}
		encoding := call.Argument(1)
		if options, ok := encoding.(*goja.Object); ok {
			encoding = options.Get("encoding")
			if encoding == nil {
				encoding = goja.Undefined()
			}
		}
		if goja.IsNull(encoding) {
			encoding = goja.Undefined()
		}
		return buffer.EncodeBytes(vm, data, encoding)
	})
	_ = exports.Set("existsSync", func(call goja.FunctionCall) goja.Value {
		path, err := fsPath(call.Argument(0))
		if err != nil {
			return vm.ToValue(false)
		}
		_, err = os.Stat(path)
		return vm.ToValue(err == nil)
	})
}

func fsPath(value goja.Value) (string, error) {
	path := value.String()
	if strings.HasPrefix(path, "file:") {
		return pathFromFileURL(path)
	}
	return filepath.Abs(path)
}

// nodePlatforms maps GOOS values that Node spells differently.
var nodePlatforms = map[string]string{
	"windows": "win32",
	"illumos": "sunos",
	"solaris": "sunos",
}

// nodeArchitectures maps GOARCH values that Node spells differently.
var nodeArchitectures = map[string]string{
	"amd64": "x64",
	"386":   "ia32",
}

func nodeName(names map[string]string, goName string) string {
	if name, ok := names[goName]; ok {
		return name
	}
	return goName
}

// requireOS provides the host-description part of Node's os module.
func requireOS(vm *goja.Runtime, module *goja.Object) {
	exports := module.Get("exports").(*goja.Object)
	eol := "\n"
	if runtime.GOOS == "windows" {
		eol = "\r\n"
	}
	_ = exports.Set("EOL", eol)
	_ = exports.Set("platform", func() string { return nodeName(nodePlatforms, runtime.GOOS) })
	_ = exports.Set("arch", func() string { return nodeName(nodeArchitectures, runtime.GOARCH) })
	_ = exports.Set("tmpdir", os.TempDir)
	_ = exports.Set("homedir", func() string {
		home, err := os.UserHomeDir()
		if err != nil {
			panic(vm.NewGoError(err))
		}
		return home
	})
	_ = exports.Set("hostname", func() string {
		name, err := os.Hostname()
		if err != nil {
			panic(vm.NewGoError(err))
		}
		return name
	})
}

// requireURL is goja_nodejs's url module plus the file URL helpers
// config code pairs with import.meta.url.
func requireURL(vm *goja.Runtime, module *goja.Object) {
	gojaurl.Require(vm, module)
	exports := module.Get("exports").(*goja.Object)
	constructor := exports.Get("URL")
	_ = exports.Set("fileURLToPath", func(value goja.Value) string {
		path, err := pathFromFileURL(value.String())
		if err != nil {
			panic(vm.NewTypeError("%s", err.Error()))
		}
		return path
	})
	_ = exports.Set("pathToFileURL", func(path string) *goja.Object {
		absolute, err := filepath.Abs(path)
		if err != nil {
			panic(vm.NewGoError(err))
		}
		fileURL, err := vm.New(constructor, vm.ToValue(bundle.FileURL(absolute)))
		if err != nil {
			panic(err)
		}
		return fileURL
	})
}

// consolePrinter routes console.log and friends to slog.
type consolePrinter struct {
	logger *slog.Logger
}

func (p consolePrinter) Log(message string)   { p.logger.Info(message, "source", "console") }
func (p consolePrinter) Info(message string)  { p.logger.Info(message, "source", "console") }
func (p consolePrinter) Debug(message string) { p.logger.Debug(message, "source", "console") }
func (p consolePrinter) Warn(message string)  { p.logger.Warn(message, "source", "console") }
func (p consolePrinter) Error(message string) { p.logger.Error(message, "source", "console") }
