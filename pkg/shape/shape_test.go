package shape

import "testing"

func TestMonospace_Shape(t *testing.T) {
	type tc struct {
		text     string
		clusters []int
		advances []float64
	}

	tests := map[string]tc{
		"ascii": {
			text:     "abc",
			clusters: []int{0, 1, 2},
			advances: []float64{10, 10, 10},
		},
		"wide cjk takes two cells": {
			text:     "a世b",
			clusters: []int{0, 1, 4},
			advances: []float64{10, 20, 10},
		},
		"combining mark merges into cluster": {
			text:     "éx", // e + combining acute
			clusters: []int{0, 3},
			advances: []float64{10, 10},
		},
		"multibyte cluster offsets are bytes": {
			text:     "héllo",
			clusters: []int{0, 1, 3, 4, 5},
			advances: []float64{10, 10, 10, 10, 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			glyphs, err := New(10).Shape(tt.text)
			if err != nil {
				t.Fatalf("Shape() error = %v", err)
			}
			if len(glyphs) != len(tt.clusters) {
				t.Fatalf("len(glyphs) = %d, want %d", len(glyphs), len(tt.clusters))
			}
			for i := range glyphs {
				if glyphs[i].Cluster != tt.clusters[i] {
					t.Errorf("glyphs[%d].Cluster = %d, want %d", i, glyphs[i].Cluster, tt.clusters[i])
				}
				if glyphs[i].Advance != tt.advances[i] {
					t.Errorf("glyphs[%d].Advance = %v, want %v", i, glyphs[i].Advance, tt.advances[i])
				}
			}
		})
	}
}

func TestMonospace_ShapeEmpty(t *testing.T) {
	glyphs, err := New(10).Shape("")
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	if glyphs != nil {
		t.Errorf("glyphs = %v, want nil", glyphs)
	}
}

func TestMonospace_TabWidth(t *testing.T) {
	t.Run("default four cells", func(t *testing.T) {
		glyphs, err := New(10).Shape("\t")
		if err != nil {
			t.Fatalf("Shape() error = %v", err)
		}
		if glyphs[0].Advance != 40 {
			t.Errorf("tab advance = %v, want 40", glyphs[0].Advance)
		}
	})

	t.Run("configured", func(t *testing.T) {
		glyphs, err := New(10, WithTabWidth(8)).Shape("\t")
		if err != nil {
			t.Fatalf("Shape() error = %v", err)
		}
		if glyphs[0].Advance != 80 {
			t.Errorf("tab advance = %v, want 80", glyphs[0].Advance)
		}
	})
}
