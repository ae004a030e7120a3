package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         Opts
		want         int
	}{
		{
			name:         "header only",
			windowHeight: 40,
			opts:         Opts{HeaderHeight: 1},
			want:         39,
		},
		{
			name:         "with player bar",
			windowHeight: 40,
			opts:         Opts{HeaderHeight: 1, PlayerBarHeight: 3},
			want:         36,
		},
		{
			name:         "all components",
			windowHeight: 40,
			opts:         Opts{HeaderHeight: 1, PlayerBarHeight: 3, StatusHeight: 1},
			want:         35,
		},
		{
			name:         "tiny window",
			windowHeight: 3,
			opts:         Opts{HeaderHeight: 1, PlayerBarHeight: 3},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentHeight(tt.windowHeight, tt.opts); got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsNarrowMode(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{60, true},
		{NarrowThreshold - 1, true},
		{NarrowThreshold, false},
		{200, false},
	}
	for _, tt := range tests {
		if got := IsNarrowMode(tt.width); got != tt.want {
			t.Errorf("IsNarrowMode(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestPanelSizes(t *testing.T) {
	tests := []struct {
		name         string
		narrow       bool
		queueVisible bool
		catalogW     int
		queueW       int
		catalogH     int
		queueH       int
	}{
		{"wide with queue", false, true, 100, 50, 30, 30},
		{"wide without queue", false, false, 150, 0, 30, 30},
		{"narrow with queue", true, true, 150, 150, 20, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CatalogWidth(150, tt.narrow, tt.queueVisible); got != tt.catalogW {
				t.Errorf("CatalogWidth() = %d, want %d", got, tt.catalogW)
			}
			if tt.queueVisible {
				if got := QueueWidth(150, tt.narrow, tt.queueVisible); got != tt.queueW {
					t.Errorf("QueueWidth() = %d, want %d", got, tt.queueW)
				}
				if got := QueueHeight(30, tt.narrow, tt.queueVisible); got != tt.queueH {
					t.Errorf("QueueHeight() = %d, want %d", got, tt.queueH)
				}
			}
			if got := CatalogHeight(30, tt.narrow, tt.queueVisible); got != tt.catalogH {
				t.Errorf("CatalogHeight() = %d, want %d", got, tt.catalogH)
			}
		})
	}
}

func TestPlayerBarRow(t *testing.T) {
	tests := []struct {
		name            string
		windowHeight    int
		playerBarHeight int
		statusHeight    int
		want            int
	}{
		{"hidden", 40, 0, 0, -1},
		{"player only", 40, 3, 0, 37},
		{"with status line", 40, 3, 1, 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlayerBarRow(tt.windowHeight, tt.playerBarHeight, tt.statusHeight); got != tt.want {
				t.Errorf("PlayerBarRow() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompute_Wide(t *testing.T) {
	f := Compute(150, 40, Opts{HeaderHeight: 1, PlayerBarHeight: 3, StatusHeight: 1, QueueVisible: true})

	if f.Narrow {
		t.Fatal("expected wide layout")
	}
	if want := (Rect{X: 0, Y: 1, Width: 100, Height: 35}); f.Catalog != want {
		t.Errorf("Catalog = %+v, want %+v", f.Catalog, want)
	}
	if want := (Rect{X: 100, Y: 1, Width: 50, Height: 35}); f.Queue != want {
		t.Errorf("Queue = %+v, want %+v", f.Queue, want)
	}
	if want := (Rect{X: 0, Y: 36, Width: 150, Height: 3}); f.PlayerBar != want {
		t.Errorf("PlayerBar = %+v, want %+v", f.PlayerBar, want)
	}
}

func TestCompute_NarrowStacksQueue(t *testing.T) {
	f := Compute(80, 34, Opts{HeaderHeight: 1, PlayerBarHeight: 3, QueueVisible: true})

	if !f.Narrow {
		t.Fatal("expected narrow layout")
	}
	if f.Catalog.Height != 20 || f.Queue.Height != 10 {
		t.Errorf("heights = %d/%d, want 20/10", f.Catalog.Height, f.Queue.Height)
	}
	if f.Queue.Y != 21 || f.Queue.X != 0 || f.Queue.Width != 80 {
		t.Errorf("Queue = %+v, want stacked at row 21", f.Queue)
	}
}

func TestCompute_NothingLoaded(t *testing.T) {
	f := Compute(150, 40, Opts{HeaderHeight: 1})

	if f.PlayerBar != (Rect{}) {
		t.Errorf("PlayerBar = %+v, want zero", f.PlayerBar)
	}
	if f.Queue != (Rect{}) {
		t.Errorf("Queue = %+v, want zero", f.Queue)
	}
	if f.Catalog.Height != 39 {
		t.Errorf("Catalog height = %d, want 39", f.Catalog.Height)
	}
}
