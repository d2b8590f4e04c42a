// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command tri opens a window and draws a hard-coded colored shape through
// WebGPU. With -snapshot it renders one frame offscreen and saves it as PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gogpu/tri"

	_ "github.com/gogpu/wgpu/hal/allbackends"
)

// GLFW and surface presentation must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		width    = flag.Int("width", 800, "window width")
		height   = flag.Int("height", 600, "window height")
		title    = flag.String("title", "tri", "window title")
		backend  = flag.String("backend", "", "GPU backend: vulkan, metal, dx12, gl, all (default $"+tri.GraphicsAPIEnv+" or all)")
		power    = flag.String("power", "", "adapter power preference: low, high, none")
		verbose  = flag.Bool("v", false, "debug logging")
		snapshot = flag.String("snapshot", "", "render one frame to this PNG file instead of opening a window")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	tri.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	backends, err := tri.ParseBackends(*backend)
	if err != nil {
		log.Fatalf("Invalid -backend: %v", err)
	}
	pref, err := tri.ParsePowerPreference(*power)
	if err != nil {
		log.Fatalf("Invalid -power: %v", err)
	}

	opts := []tri.Option{
		tri.WithTitle(*title),
		tri.WithSize(*width, *height),
		tri.WithBackends(backends),
		tri.WithPowerPreference(pref),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *snapshot != "" {
		if err := writeSnapshot(ctx, *snapshot, *width, *height, opts); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		log.Printf("Snapshot saved to %s (%dx%d)\n", *snapshot, *width, *height)
		return
	}

	if err := tri.Run(ctx, opts...); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("tri: %v", err)
	}
}

func writeSnapshot(ctx context.Context, path string, width, height int, opts []tri.Option) error {
	img, err := tri.Snapshot(ctx, width, height, opts...)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
