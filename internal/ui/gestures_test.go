package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

// fakeClock is advanced manually by the tests
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestGestureHandler_Classify(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float32
		hold   time.Duration
		want   GestureType
	}{
		{"tap", 2, 3, 50 * time.Millisecond, GestureTap},
		{"long press", 1, 1, DefaultLongPressDuration, GestureLongPress},
		{"swipe down", 5, 120, 100 * time.Millisecond, GestureSwipeDown},
		{"swipe up", -5, -120, 100 * time.Millisecond, GestureSwipeUp},
		{"swipe right", 120, 10, 100 * time.Millisecond, GestureSwipeRight},
		{"swipe left", -120, 10, 100 * time.Millisecond, GestureSwipeLeft},
		{"diagonal at threshold", 30, 40, 100 * time.Millisecond, GestureSwipeDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Unix(1000, 0)}
			var got []GestureType
			gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })
			gh.now = clock.now

			gh.TouchDown(touchAt(100, 100))
			clock.advance(tt.hold)
			gh.TouchUp(touchAt(100+tt.dx, 100+tt.dy))

			assert.Equal(t, []GestureType{tt.want}, got)
		})
	}
}

func TestGestureHandler_CancelDropsTouch(t *testing.T) {
	called := false
	gh := NewGestureHandler(func(GestureType) { called = true })

	gh.TouchDown(touchAt(0, 0))
	gh.TouchCancel(touchAt(0, 0))
	gh.TouchUp(touchAt(0, 200))

	assert.False(t, called)
}

func TestGestureType_String(t *testing.T) {
	assert.Equal(t, "swipe-down", GestureSwipeDown.String())
	assert.Equal(t, "unknown", GestureType(42).String())
}

func TestPullToRefresh_SwipeDownRefreshes(t *testing.T) {
	test.NewApp()

	clock := &fakeClock{t: time.Unix(1000, 0)}
	refreshes := 0
	ptr := NewPullToRefresh(widget.NewLabel("content"), func() { refreshes++ })
	ptr.now = clock.now
	ptr.gestureHandler.now = clock.now

	swipe := func(dy float32) {
		ptr.TouchDown(touchAt(50, 50))
		clock.advance(100 * time.Millisecond)
		ptr.TouchUp(touchAt(50, 50+dy))
	}

	swipe(150)
	assert.Equal(t, 1, refreshes)

	// Within the cooldown
	swipe(150)
	assert.Equal(t, 1, refreshes)

	// Swipe up never refreshes
	clock.advance(RefreshCooldown)
	swipe(-150)
	assert.Equal(t, 1, refreshes)

	swipe(150)
	assert.Equal(t, 2, refreshes)
}

func TestPullToRefresh_RendersContent(t *testing.T) {
	test.NewApp()

	content := widget.NewLabel("content")
	ptr := NewPullToRefresh(content, nil)

	assert.Equal(t, content.MinSize(), ptr.MinSize())
	assert.NotPanics(t, func() {
		ptr.TouchDown(touchAt(0, 0))
		ptr.TouchUp(touchAt(0, 200))
	})
}
