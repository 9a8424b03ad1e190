package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/GokerOzenc93/yago/pkg/analysis"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/snap"
	"github.com/GokerOzenc93/yago/pkg/stl"
	"github.com/GokerOzenc93/yago/pkg/viewer"
)

type App struct {
	window fyne.Window
	view   *viewer.SceneView
	solids []*scene.Solid

	settings snap.Settings
	info     *infoPanel
}

type infoPanel struct {
	modelLabel    *widget.Label
	lastPickLabel *widget.Label
	prevPickLabel *widget.Label
	distanceLabel *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("YAGO - Snap Inspector")

	gui := &App{
		window:   w,
		settings: snap.DefaultSettings(),
	}

	if len(os.Args) > 1 {
		gui.loadFile(os.Args[1])
	} else {
		gui.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcome := widget.NewLabel("Welcome to YAGO")
	welcome.TextStyle = fyne.TextStyle{Bold: true}

	open := widget.NewButton("Open STL File", a.showFileDialog)

	a.window.SetContent(container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcome),
		container.NewCenter(widget.NewLabel("Open a model, then tap near corners, edges and centers to snap")),
		layout.NewSpacer(),
		container.NewCenter(open),
		layout.NewSpacer(),
	))
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	model, err := stl.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load STL file: %w", err), a.window)
		return
	}

	a.solids = []*scene.Solid{scene.NewSolid(scene.SolidImported, model.Mesh)}
	a.setupMainUI(model.Name)
}

func (a *App) setupMainUI(modelName string) {
	a.info = &infoPanel{
		modelLabel:    widget.NewLabel(""),
		lastPickLabel: widget.NewLabel("Pick: none"),
		prevPickLabel: widget.NewLabel(""),
		distanceLabel: widget.NewLabel("Distance: -"),
	}
	a.info.distanceLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.view = viewer.NewSceneView(nil, a.solids)
	a.view.SetSnapSettings(a.settings)
	a.view.SetOnSnap(func(cand snap.Candidate) {
		a.updatePickInfo()
	})

	report := analysis.Analyze(a.solids[0])
	a.info.modelLabel.SetText(fmt.Sprintf(
		"Model: %s\nVertices: %d\nFeature edges: %d\nTriangles: %d\nSurface area: %.2f",
		modelName, report.VertexCount, report.EdgeCount, report.TriangleCount, report.SurfaceArea,
	))

	panel := container.NewVBox(
		widget.NewLabel("Model:"),
		widget.NewSeparator(),
		a.info.modelLabel,
		widget.NewSeparator(),
		widget.NewLabel("Snap kinds:"),
	)
	for _, kind := range snap.Kinds() {
		k := kind
		check := widget.NewCheck(k.String(), func(checked bool) {
			a.settings[k] = checked
			a.view.SetSnapSettings(a.settings)
		})
		check.SetChecked(a.settings.Enabled(k))
		panel.Add(check)
	}
	panel.Add(widget.NewSeparator())
	panel.Add(widget.NewLabel("Picks:"))
	panel.Add(a.info.lastPickLabel)
	panel.Add(a.info.prevPickLabel)
	panel.Add(a.info.distanceLabel)
	panel.Add(widget.NewSeparator())
	panel.Add(widget.NewButton("Clear Picks", func() {
		a.view.ClearPicks()
		a.updatePickInfo()
	}))
	panel.Add(widget.NewButton("Open File", a.showFileDialog))

	scroll := container.NewVScroll(panel)
	scroll.SetMinSize(fyne.NewSize(280, 0))

	a.window.SetContent(container.NewBorder(nil, nil, nil, scroll, a.view))
	a.view.Render(800, 600)
}

func (a *App) updatePickInfo() {
	picks := a.view.Picked()

	if len(picks) == 0 {
		a.info.lastPickLabel.SetText("Pick: none")
		a.info.prevPickLabel.SetText("")
		a.info.distanceLabel.SetText("Distance: -")
		return
	}

	last := picks[len(picks)-1]
	a.info.lastPickLabel.SetText(fmt.Sprintf("%s (%.3f, %.3f, %.3f)",
		last.Kind, last.Point.X, last.Point.Y, last.Point.Z))

	if len(picks) < 2 {
		a.info.prevPickLabel.SetText("")
		a.info.distanceLabel.SetText("Distance: -")
		return
	}

	prev := picks[len(picks)-2]
	a.info.prevPickLabel.SetText(fmt.Sprintf("%s (%.3f, %.3f, %.3f)",
		prev.Kind, prev.Point.X, prev.Point.Y, prev.Point.Z))
	a.info.distanceLabel.SetText(fmt.Sprintf("Distance: %.6f units",
		last.Point.Distance(prev.Point)))
}
