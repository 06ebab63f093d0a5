// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jshost executes bundled configuration code in an embedded
// JavaScript runtime (goja, with goja_nodejs providing require, the
// event loop, console, process and URL).
//
// A [Host] is built for exactly one resolution. Its module cache starts
// empty, so reloading a config in a long-running process always sees
// the file's current content. Source text reaches the runtime through a
// per-host extension handler table: ".js" and ".json" files are read
// from disk, ".mjs" files are rewritten from ES module syntax to
// CommonJS on the way in (esbuild's transform API), and unknown
// extensions fall back to the ".js" handler, as Node does.
//
// Bundles are executed with one of two [Strategy] values, chosen once
// per resolution from the classifier's verdict:
//
//   - [TemporaryFileImport] (module style) writes the bundle beside the
//     original file as "<file>.timestamp-<ms>-<random>.mjs", imports it
//     by file:// URL, takes the default export, and always removes the
//     temporary file afterwards. A failed removal is logged and
//     otherwise ignored so it never masks the primary error.
//
//   - [HandlerInterception] (classic style) installs a handler for the
//     file's extension that serves the bundled code for the original
//     file's real (symlink-resolved) path and defers to the previous
//     handler for every other file, requires the original path, and
//     restores the previous handler unconditionally. The
//     install/use/restore sequence runs under the host's section lock.
//
// Native modules available to config code, each also under its
// "node:" name:
//
//   - "path": join, resolve, relative and the other path helpers
//   - "fs": readFileSync and existsSync
//   - "os": platform, arch, homedir, tmpdir, hostname and EOL
//   - "url": goja_nodejs's URL and URLSearchParams plus fileURLToPath
//     and pathToFileURL
//   - "console": routed to the host's slog.Logger
//   - "process": env carries NODE_ENV set to the resolution mode
//   - "buffer" and "util" from goja_nodejs
//
// "cfgresolve" exports the defineConfig identity helper.
//
// Top-level await is not supported. Bundles target ES2017 and run as
// CommonJS inside the runtime, so an awaited value must come from an
// async function or a promise export, which [Export.Resolve] settles.
package jshost
