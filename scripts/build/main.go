// Package main builds the lintwalk binary into bin/, stamping the version
// from git.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

func main() {
	ctx := context.Background()

	binaryName := "lintwalk"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}

	version := gitVersion(ctx)
	ldflags := "-X github.com/andyballingall/lintwalk/internal/app.Version=" + version

	if err := os.MkdirAll("bin", 0o755); err != nil {
		fmt.Printf("❌ Failed to create bin directory: %v\n", err)
		os.Exit(1)
	}

	outputPath := filepath.Join("bin", binaryName)
	fmt.Printf("Building lintwalk %s...\n", version)

	cmd := exec.CommandContext(ctx, "go", "build", "-ldflags", ldflags, "-o", outputPath, "./cmd/lintwalk")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("❌ Build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Build complete: %s\n", outputPath)
}

// gitVersion describes HEAD, or returns "dev" outside a git checkout.
func gitVersion(ctx context.Context) string {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", "describe", "--tags", "--always", "--dirty")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "dev"
	}
	return strings.TrimSpace(out.String())
}
