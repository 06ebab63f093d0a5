// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import "strings"

// Namespaced specifiers that are always runtime-provided.
const (
	nodeNamespace = "node:"
	npmNamespace  = "npm:"
	bunNamespace  = "bun:"
)

// nodeBuiltins mirrors Node's module.builtinModules (Node 20), minus
// the namespaced entries that only exist with the "node:" prefix.
var nodeBuiltins = map[string]struct{}{
	"_http_agent": {}, "_http_client": {}, "_http_common": {},
	"_http_incoming": {}, "_http_outgoing": {}, "_http_server": {},
	"_stream_duplex": {}, "_stream_passthrough": {}, "_stream_readable": {},
	"_stream_transform": {}, "_stream_wrap": {}, "_stream_writable": {},
	"_tls_common": {}, "_tls_wrap": {},
	"assert": {}, "assert/strict": {}, "async_hooks": {}, "buffer": {},
	"child_process": {}, "cluster": {}, "console": {}, "constants": {},
	"crypto": {}, "dgram": {}, "diagnostics_channel": {}, "dns": {},
	"dns/promises": {}, "domain": {}, "events": {}, "fs": {},
	"fs/promises": {}, "http": {}, "http2": {}, "https": {},
	"inspector": {}, "inspector/promises": {}, "module": {}, "net": {},
	"os": {}, "path": {}, "path/posix": {}, "path/win32": {},
	"perf_hooks": {}, "process": {}, "punycode": {}, "querystring": {},
	"readline": {}, "readline/promises": {}, "repl": {}, "stream": {},
	"stream/consumers": {}, "stream/promises": {}, "stream/web": {},
	"string_decoder": {}, "sys": {}, "timers": {}, "timers/promises": {},
	"tls": {}, "trace_events": {}, "tty": {}, "url": {}, "util": {},
	"util/types": {}, "v8": {}, "vm": {}, "wasi": {}, "worker_threads": {},
	"zlib": {},
}

// IsBuiltin reports whether specifier names a runtime built-in: any
// "node:", "npm:" or "bun:" specifier, or a bare Node core module name.
func IsBuiltin(specifier string) bool {
	if strings.HasPrefix(specifier, nodeNamespace) ||
		strings.HasPrefix(specifier, npmNamespace) ||
		strings.HasPrefix(specifier, bunNamespace) {
		return true
	}
	_, ok := nodeBuiltins[specifier]
	return ok
}
