// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const exampleInput = `{"foo": "bar", "baz": 42, "qux": [1, 2, 3]}`

func runTool(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errs strings.Builder
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	t.Logf("Log output:\n%s", errs.String())
	return out.String(), err
}

func TestGet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"Example", exampleInput,
			[]string{"get", "foo", "baz", "qux.0", "qux.2", "qux.-2"},
			"bar\n42\n1\n3\n2\n"},
		{"Container", exampleInput, []string{"get", "qux"}, "[1,2,3]\n"},
		{"Prefix", `{"foobar": true}`, []string{"get", "foo"}, "true\n"},
		{"Pool", exampleInput, []string{"get", "--allocator", "pool", "qux.1"}, "2\n"},
		{"HuJSON", "{\n  // comment\n  \"a\": [1, 2,],\n}", []string{"get", "--hujson", "a.1"}, "2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runTool(t, tc.input, tc.args...)
			if err != nil {
				t.Fatalf("Execute: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestGetErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
	}{
		{"NoArgs", exampleInput, []string{"get"}},
		{"BadInput", `{"a": 1`, []string{"get", "a"}},
		{"NotFound", exampleInput, []string{"get", "nonesuch"}},
		{"Exact", `{"foobar": true}`, []string{"get", "--exact", "foo"}},
		{"Range", exampleInput, []string{"get", "qux.3"}},
		{"BadAllocator", exampleInput, []string{"get", "--allocator", "arena", "foo"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runTool(t, tc.input, tc.args...)
			if err == nil {
				t.Fatalf("Execute: got %q, want error", got)
			}
			t.Logf("Got expected error: %v", err)
		})
	}
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.json")
	if err := os.WriteFile(input, []byte(" [ {\"a\" : null}, false ] trailing"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	conf := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(conf, []byte("allocator: pool\nlog:\n  level: DEBUG\n"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := runTool(t, "", "dump", "--input", input, "--config", conf)
	if err != nil {
		t.Fatalf("Execute: unexpected error: %v", err)
	}
	if want := "[{\"a\":null},false]\n"; got != want {
		t.Errorf("Output: got %q, want %q", got, want)
	}
}
