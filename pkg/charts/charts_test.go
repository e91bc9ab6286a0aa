package charts

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/iWorld-y/text_radar/pkg/model"
	"github.com/iWorld-y/text_radar/pkg/view"
)

func sampleDataset() view.ChartDataset {
	return view.NewChartDataset([]model.WordCount{
		{Word: "the", Count: 2},
		{Word: "cat", Count: 1},
		{Word: "sat", Count: 1},
		{Word: "on", Count: 1},
		{Word: "mat", Count: 1},
	})
}

func TestLibrariesRejectDuplicateBinding(t *testing.T) {
	libs := map[string]Library{
		"svg":  NewSVG(0, 0),
		"text": NewText(0),
	}
	for name, lib := range libs {
		t.Run(name, func(t *testing.T) {
			first, err := lib.New("barChart", Bar, sampleDataset())
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if _, err := lib.New("barChart", Bar, sampleDataset()); !errors.Is(err, ErrSurfaceInUse) {
				t.Fatalf("second New() error = %v, want ErrSurfaceInUse", err)
			}

			// 不同表面互不影响
			other, err := lib.New("pieChart", Doughnut, sampleDataset())
			if err != nil {
				t.Fatalf("New(pieChart) error = %v", err)
			}
			other.Destroy()

			first.Destroy()
			first.Destroy()
			second, err := lib.New("barChart", Bar, sampleDataset())
			if err != nil {
				t.Fatalf("New() after Destroy error = %v", err)
			}
			if second.Kind() != Bar || second.Surface() != "barChart" {
				t.Errorf("Kind/Surface = %s/%s", second.Kind(), second.Surface())
			}
			second.Destroy()
		})
	}
}

func TestRenderAfterDestroy(t *testing.T) {
	c, err := NewText(10).New("bar", Bar, sampleDataset())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.Destroy()
	if err := c.Render(&bytes.Buffer{}); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Render() error = %v, want ErrDestroyed", err)
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	lib := NewText(10)
	if _, err := lib.New("bar", Bar, view.ChartDataset{}); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("empty dataset error = %v", err)
	}
	if _, err := lib.New("bar", Kind("line"), sampleDataset()); err == nil {
		t.Error("unknown kind should fail")
	}
	if lib.Bound("bar") {
		t.Error("failed New() must not keep the surface bound")
	}
}

func TestTextRender(t *testing.T) {
	lib := NewText(20)

	bar, err := lib.New("bar", Bar, sampleDataset())
	if err != nil {
		t.Fatalf("New(bar) error = %v", err)
	}
	defer bar.Destroy()
	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		t.Fatalf("Render(bar) error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("bar lines = %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "the") || !strings.HasSuffix(lines[0], " 2") {
		t.Errorf("first bar line = %q", lines[0])
	}

	donut, err := lib.New("pie", Doughnut, sampleDataset())
	if err != nil {
		t.Fatalf("New(doughnut) error = %v", err)
	}
	defer donut.Destroy()
	buf.Reset()
	if err := donut.Render(&buf); err != nil {
		t.Fatalf("Render(doughnut) error = %v", err)
	}
	if !strings.Contains(buf.String(), "(33.3%)") || !strings.Contains(buf.String(), "(16.7%)") {
		t.Errorf("legend missing percentages:\n%s", buf.String())
	}
}

func TestFitLabel(t *testing.T) {
	if got := fitLabel("go"); len(got) != labelWidth {
		t.Errorf("fitLabel(short) width = %d", len(got))
	}
	long := fitLabel("internationalization")
	if !strings.HasSuffix(long, "…") {
		t.Errorf("fitLabel(long) = %q", long)
	}
}

func TestSVGRender(t *testing.T) {
	lib := NewSVG(640, 320)
	for _, kind := range []Kind{Bar, Doughnut} {
		c, err := lib.New(string(kind), kind, sampleDataset())
		if err != nil {
			t.Fatalf("New(%s) error = %v", kind, err)
		}
		var buf bytes.Buffer
		if err := c.Render(&buf); err != nil {
			t.Fatalf("Render(%s) error = %v", kind, err)
		}
		if !strings.Contains(buf.String(), "<svg") {
			t.Errorf("Render(%s) did not produce svg", kind)
		}
		c.Destroy()
	}
}

func TestLibrariesRejectDatasetWithoutPositiveValues(t *testing.T) {
	zero := view.NewChartDataset([]model.WordCount{{Word: "a", Count: 0}, {Word: "b", Count: 0}})
	libs := map[string]Library{
		"svg":  NewSVG(0, 0),
		"text": NewText(0),
	}
	for name, lib := range libs {
		t.Run(name, func(t *testing.T) {
			for _, kind := range []Kind{Bar, Doughnut} {
				if _, err := lib.New("surface", kind, zero); !errors.Is(err, ErrNoValues) {
					t.Errorf("New(%s) error = %v, want ErrNoValues", kind, err)
				}
			}
		})
	}
}

func TestTextBarsWithZeroMax(t *testing.T) {
	c := &textChart{
		handle: &handle{kind: Bar, surface: "bar", ds: view.NewChartDataset([]model.WordCount{{Word: "a", Count: 0}})},
		width:  10,
	}
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(buf.String(), "█") || !strings.HasSuffix(strings.TrimRight(buf.String(), "\n"), " 0") {
		t.Errorf("zero bar rendered as %q", buf.String())
	}
}

func TestChartKeepsDataset(t *testing.T) {
	ds := sampleDataset()
	for name, lib := range map[string]Library{"svg": NewSVG(0, 0), "text": NewText(0)} {
		c, err := lib.New("bar", Bar, ds)
		if err != nil {
			t.Fatalf("%s New() error = %v", name, err)
		}
		got := c.Dataset()
		if got.Len() != ds.Len() || got.Labels[0] != "the" || got.Values[0] != 2 {
			t.Errorf("%s Dataset() = %+v", name, got)
		}
		c.Destroy()
	}
}
