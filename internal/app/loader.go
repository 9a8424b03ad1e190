package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GokerOzenc93/yago/pkg/openscad"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/stl"
	"github.com/GokerOzenc93/yago/pkg/watcher"
)

// loadSolid loads an STL or OpenSCAD file as an imported solid.
// OpenSCAD sources are rendered to a temporary STL first; the temp path
// is returned so the caller can clean it up.
func loadSolid(path string) (*scene.Solid, string, bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scad":
		renderer := openscad.NewRenderer(filepath.Dir(path))
		tempFile := filepath.Join(os.TempDir(), fmt.Sprintf("yago_%d.stl", time.Now().UnixNano()))
		if err := renderer.RenderToSTL(path, tempFile); err != nil {
			return nil, "", true, err
		}
		model, err := stl.Parse(tempFile)
		if err != nil {
			os.Remove(tempFile)
			return nil, "", true, fmt.Errorf("parse rendered STL: %w", err)
		}
		return scene.NewSolid(scene.SolidImported, model.Mesh), tempFile, true, nil

	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, "", false, fmt.Errorf("parse STL: %w", err)
		}
		return scene.NewSolid(scene.SolidImported, model.Mesh), path, false, nil

	default:
		return nil, "", false, fmt.Errorf("unsupported file type %q, expected .stl or .scad", filepath.Ext(path))
	}
}

// setupFileWatcher watches the source file (and for OpenSCAD sources
// the whole include graph) and flags a reload on change
func (app *App) setupFileWatcher() error {
	w, err := watcher.New(500 * time.Millisecond)
	if err != nil {
		return err
	}

	files := []string{app.FileWatch.sourceFile}
	if app.FileWatch.isOpenSCAD {
		renderer := openscad.NewRenderer(filepath.Dir(app.FileWatch.sourceFile))
		deps, err := renderer.Dependencies(app.FileWatch.sourceFile)
		if err != nil {
			w.Close()
			return fmt.Errorf("resolve dependencies: %w", err)
		}
		files = deps
	}

	if err := w.Watch(files, func(changed string) {
		fmt.Printf("file changed: %s\n", changed)
		app.FileWatch.needsReload = true
	}); err != nil {
		w.Close()
		return err
	}

	w.Start()
	app.FileWatch.watcher = w
	fmt.Printf("watching %d file(s) for changes\n", len(files))
	return nil
}

// reloadSolid re-reads the source file in the background. The GPU mesh
// swap happens on the main thread in applyLoaded.
func (app *App) reloadSolid() {
	if app.FileWatch.isLoading {
		return
	}
	app.FileWatch.isLoading = true
	app.FileWatch.loadStarted = time.Now()
	fmt.Println("reloading...")

	go func() {
		solid, stlFile, _, err := loadSolid(app.FileWatch.sourceFile)
		if err != nil {
			fmt.Printf("reload failed: %v\n", err)
			app.FileWatch.isLoading = false
			return
		}
		app.FileWatch.loaded = solid
		app.FileWatch.loadedSTL = stlFile
	}()
}

// applyLoaded swaps in a background-loaded solid. Must run on the main
// thread because it touches GPU resources.
func (app *App) applyLoaded() {
	if app.FileWatch.loaded == nil {
		return
	}

	solid := app.FileWatch.loaded
	app.FileWatch.loaded = nil

	if app.FileWatch.isOpenSCAD && app.FileWatch.tempSTLFile != "" && app.FileWatch.tempSTLFile != app.FileWatch.loadedSTL {
		os.Remove(app.FileWatch.tempSTLFile)
	}
	app.FileWatch.tempSTLFile = app.FileWatch.loadedSTL

	// Replace the imported solid but keep everything drawn on top of it.
	for i, existing := range app.Scene.solids {
		if existing.Kind == scene.SolidImported {
			solid.Pose = existing.Pose
			app.Scene.solids[i] = solid
			break
		}
	}

	app.refreshModelMesh(solid)
	app.FileWatch.isLoading = false
	fmt.Printf("reloaded in %.2fs\n", time.Since(app.FileWatch.loadStarted).Seconds())
}
