package main

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestBuildEnv(t *testing.T) {
	tests := []struct {
		name string
		goos string
		path string
		want []string
	}{
		{"linux", "linux", "/usr/bin", []string{"CGO_ENABLED=1"}},
		{"windows sem msys", "windows", `C:\Go\bin`, []string{"CGO_ENABLED=1", `PATH=C:\msys64\mingw64\bin;C:\Go\bin`, "CC=gcc"}},
		{"windows com msys", "windows", `C:\msys64\mingw64\bin;C:\Go\bin`, []string{"CGO_ENABLED=1", "CC=gcc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildEnv(tt.goos, tt.path); !slices.Equal(got, tt.want) {
				t.Errorf("buildEnv(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestBuildArgs(t *testing.T) {
	args, output := buildArgs(dioramaPkg, "dist")
	if want := filepath.Join("dist", binaryName("voxelcake")); output != want {
		t.Fatalf("output = %q, want %q", output, want)
	}
	if args[0] != "build" || args[len(args)-1] != dioramaPkg {
		t.Errorf("args = %q", args)
	}
	i := slices.Index(args, "-o")
	if i < 0 || args[i+1] != output {
		t.Errorf("-o ausente ou errado: %q", args)
	}
}
