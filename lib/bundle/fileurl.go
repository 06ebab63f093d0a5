// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"net/url"
	"path/filepath"
	"strings"
)

// FileURL converts an absolute filesystem path to a file:// URL string,
// percent-encoding as needed. Windows drive paths gain the leading
// slash the URL form requires.
func FileURL(path string) string {
	slashed := filepath.ToSlash(path)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	return (&url.URL{Scheme: "file", Path: slashed}).String()
}
