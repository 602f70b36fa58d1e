package page

import "testing"

func newTestPage() *Page {
	return New([]string{"My Portfolio", "My projects", "Contact me"}, 600)
}

func TestNewAnchors(t *testing.T) {
	p := newTestPage()

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	for i, a := range p.Anchors() {
		if a.Index != i {
			t.Errorf("anchor %d Index = %d", i, a.Index)
		}
	}
	if got := p.Anchors()[1]; got.ID != "section-1" || got.Title != "My projects" {
		t.Errorf("anchor 1 = %+v", got)
	}
	if p.ContentHeight() != 1800 {
		t.Errorf("ContentHeight() = %v, want 1800", p.ContentHeight())
	}
	if p.MaxScroll() != 1200 {
		t.Errorf("MaxScroll() = %v, want 1200", p.MaxScroll())
	}
}

func TestScrollClamps(t *testing.T) {
	tests := []struct {
		name    string
		actions func(p *Page)
		want    float64
	}{
		{"by", func(p *Page) { p.ScrollBy(250) }, 250},
		{"negative", func(p *Page) { p.ScrollBy(-50) }, 0},
		{"past end", func(p *Page) { p.ScrollBy(5000) }, 1200},
		{"page down twice", func(p *Page) { p.PageDown(); p.PageDown() }, 1200},
		{"page down up", func(p *Page) { p.PageDown(); p.PageDown(); p.PageUp() }, 600},
		{"end", func(p *Page) { p.End() }, 1200},
		{"home", func(p *Page) { p.End(); p.Home() }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPage()
			tt.actions(p)
			if p.ScrollY() != tt.want {
				t.Errorf("ScrollY() = %v, want %v", p.ScrollY(), tt.want)
			}
		})
	}
}

func TestScrollReportsChange(t *testing.T) {
	p := newTestPage()
	if p.ScrollBy(-10) {
		t.Error("ScrollBy at top reported a change")
	}
	if !p.ScrollBy(10) {
		t.Error("ScrollBy(10) reported no change")
	}
}

func TestSetViewportHeightKeepsRelativePosition(t *testing.T) {
	p := newTestPage()
	p.ScrollTo(900)

	p.SetViewportHeight(400)

	if p.ScrollY() != 600 {
		t.Errorf("ScrollY() = %v, want 600", p.ScrollY())
	}
	top, bottom := p.SectionBounds(2)
	if top != 800 || bottom != 1200 {
		t.Errorf("SectionBounds(2) = %v, %v", top, bottom)
	}
}

func TestCurrent(t *testing.T) {
	p := newTestPage()

	tests := []struct {
		scroll float64
		want   int
	}{
		{0, 0},
		{299, 0},
		{300, 1},
		{900, 2},
		{1200, 2},
	}
	for _, tt := range tests {
		p.ScrollTo(tt.scroll)
		a, ok := p.Current()
		if !ok || a.Index != tt.want {
			t.Errorf("scroll %v: Current() = %+v, want index %d", tt.scroll, a, tt.want)
		}
	}
}

func TestEmptyPage(t *testing.T) {
	p := New(nil, 600)
	if p.MaxScroll() != 0 {
		t.Errorf("MaxScroll() = %v", p.MaxScroll())
	}
	if _, ok := p.Current(); ok {
		t.Error("Current() on empty page returned ok")
	}
}
