package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	flexbridge "github.com/onebit/flexbridge"
	"github.com/onebit/flexbridge/bridge"
	"github.com/onebit/flexbridge/engine"
	"github.com/onebit/flexbridge/flex"
	"github.com/onebit/flexbridge/scene"
	"github.com/onebit/flexbridge/snapshot"
)

func main() {
	var (
		sceneFile   = flag.String("scene", "", "Path to TOML scene file")
		wasmFile    = flag.String("wasm", "", "Path to a guest layout wasm module (default: in-process backend)")
		width       = flag.Float64("width", 0, "Available width (0 = terminal width)")
		height      = flag.Float64("height", 0, "Available height (0 = terminal height)")
		snapOut     = flag.String("snapshot", "", "Write computed geometry as CBOR to this file")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *sceneFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: flexdemo -scene <file.toml> [-wasm guest.wasm] [-width N] [-height N]")
		fmt.Fprintln(os.Stderr, "       flexdemo -scene <file.toml> -snapshot out.cbor")
		fmt.Fprintln(os.Stderr, "       flexdemo -scene <file.toml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			bridge.SetLogger(l)
			engine.SetLogger(l)
		}
	}

	if *interactive {
		if err := runInteractive(*sceneFile, *wasmFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*sceneFile, *wasmFile, *snapOut, float32(*width), float32(*height)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newBackend picks the in-process engine or a wasm guest module.
func newBackend(ctx context.Context, wasmFile string) (flexbridge.Backend, func(), error) {
	if wasmFile == "" {
		return flex.New(), func() {}, nil
	}
	guest, err := os.ReadFile(wasmFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read guest module: %w", err)
	}
	b, err := engine.New(ctx, guest)
	if err != nil {
		return nil, nil, err
	}
	return b, func() { b.Close(ctx) }, nil
}

func availableSize(width, height float32) (float32, float32) {
	if width > 0 && height > 0 {
		return width, height
	}
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}
	if width <= 0 {
		width = float32(w)
	}
	if height <= 0 {
		height = float32(h)
	}
	return width, height
}

func run(sceneFile, wasmFile, snapOut string, width, height float32) error {
	ctx := context.Background()

	doc, err := scene.ParseFile(sceneFile)
	if err != nil {
		return err
	}

	backend, closeBackend, err := newBackend(ctx, wasmFile)
	if err != nil {
		return err
	}
	defer closeBackend()

	session, err := bridge.NewSession(backend)
	if err != nil {
		return err
	}
	defer session.Close()

	tree, err := scene.Build(session, doc)
	if err != nil {
		return err
	}

	width, height = availableSize(width, height)
	session.CalculateLayout(tree.Root, width, height, flexbridge.DirectionLTR)

	fmt.Printf("Scene: %s (%d nodes, %gx%g)\n\n", sceneFile, tree.Len(), width, height)
	printTree(session, doc, tree)

	if snapOut != "" {
		snap, err := snapshot.Capture(session, tree.Root)
		if err != nil {
			return err
		}
		f, err := os.Create(snapOut)
		if err != nil {
			return fmt.Errorf("create snapshot file: %w", err)
		}
		defer f.Close()
		if err := snapshot.Write(f, snap); err != nil {
			return err
		}
		fmt.Printf("\nSnapshot written to %s\n", snapOut)
	}

	return nil
}

// printTree lists every node in document order, indented by depth.
func printTree(s *bridge.Session, doc *scene.Document, tree *scene.Tree) {
	depths := make(map[string]int, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if n.Parent == "" {
			depths[n.ID] = 0
		} else {
			depths[n.ID] = depths[n.Parent] + 1
		}
	}
	for _, n := range doc.Nodes {
		h, ok := tree.Handle(n.ID)
		if !ok {
			continue
		}
		r := s.Layout(h)
		indent := strings.Repeat("  ", depths[n.ID])
		fmt.Printf("%s%s %s\n",
			indent,
			nodeStyle.Render(fmt.Sprintf("%-20s", n.ID)),
			rectStyle.Render(fmt.Sprintf("%g,%g %gx%g", r.Left, r.Top, r.Width, r.Height)))
	}
}
