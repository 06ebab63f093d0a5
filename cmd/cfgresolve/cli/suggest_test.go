// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"resolve", "resolve", 0},
		{"reslove", "resolve", 2},
		{"probe", "prob", 1},
		{"deps", "dpes", 2},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
		if got := levenshtein(test.b, test.a); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d (symmetry)", test.b, test.a, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{{Name: "resolve"}, {Name: "deps"}, {Name: "probe"}}
	tests := map[string]string{
		"resolv":    "resolve",
		"dep":       "deps",
		"porbe":     "probe",
		"unrelated": "",
	}
	for input, want := range tests {
		if got := suggestCommand(input, commands); got != want {
			t.Errorf("suggestCommand(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("root", "", "")
	flagSet.StringP("mode", "m", "", "")
	flagSet.Bool("v", false, "")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--roott", "x"}, "--root"},
		{[]string{"--root", "x", "--mdoe=y"}, "--mode"},
		{[]string{"-m", "x", "--zzzzzzzz"}, ""},
		{[]string{"name", "--", "--roott"}, ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, flagSet); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
