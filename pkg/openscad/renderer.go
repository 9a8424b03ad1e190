// Package openscad shells out to the OpenSCAD CLI so .scad sources can
// be opened like STL files: they are rendered to a temporary STL and
// their include graph is watched for hot reload.
package openscad

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	useStmt     = regexp.MustCompile(`^\s*use\s*<([^>]+)>`)
	includeStmt = regexp.MustCompile(`^\s*include\s*<([^>]+)>`)
)

// Renderer renders OpenSCAD sources relative to a working directory
type Renderer struct {
	workDir string
}

// NewRenderer creates a renderer rooted at workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{workDir: workDir}
}

// RenderToSTL renders a .scad file to the given STL output path
func (r *Renderer) RenderToSTL(scadFile, outputFile string) error {
	if _, err := exec.LookPath("openscad"); err != nil {
		return fmt.Errorf("openscad not found in PATH, install it from https://openscad.org/")
	}

	cmd := exec.Command("openscad", "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("render %s: %w: %s", scadFile, err, stderr.String())
		}
		return fmt.Errorf("render %s: %w", scadFile, err)
	}
	return nil
}

// Dependencies returns the file itself plus the transitive closure of
// its use/include statements, as absolute paths. This is the watch set
// for hot reload.
func (r *Renderer) Dependencies(scadFile string) ([]string, error) {
	visited := make(map[string]bool)
	var deps []string
	if err := r.collect(r.abs(scadFile), visited, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

func (r *Renderer) collect(scadFile string, visited map[string]bool, deps *[]string) error {
	if visited[scadFile] {
		return nil
	}
	visited[scadFile] = true
	*deps = append(*deps, scadFile)

	direct, err := r.parseIncludes(scadFile)
	if err != nil {
		return err
	}
	for _, dep := range direct {
		if err := r.collect(dep, visited, deps); err != nil {
			return err
		}
	}
	return nil
}

// parseIncludes scans one file for use/include statements
func (r *Renderer) parseIncludes(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", scadFile, err)
	}
	defer file.Close()

	dir := filepath.Dir(scadFile)
	var deps []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		for _, re := range []*regexp.Regexp{useStmt, includeStmt} {
			if m := re.FindStringSubmatch(line); len(m) > 1 {
				deps = append(deps, r.resolve(m[1], dir))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", scadFile, err)
	}
	return deps, nil
}

// resolve maps an include path to an absolute path, preferring the
// including file's directory over the working directory.
func (r *Renderer) resolve(dep, dir string) string {
	candidate := filepath.Clean(filepath.Join(dir, dep))
	if strings.HasPrefix(dep, "./") || strings.HasPrefix(dep, "../") {
		return candidate
	}
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return filepath.Clean(filepath.Join(r.workDir, dep))
}

func (r *Renderer) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.workDir, path)
}
