package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// String returns a readable gesture name
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureLongPress:
		return "long-press"
	default:
		return "unknown"
	}
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler classifies touch down/up pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType)
	now       func() time.Time

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		now:               time.Now,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown records where and when a touch started
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
}

// TouchUp classifies the finished touch
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	duration := gh.now().Sub(gh.touchStartTime)
	gh.touchStartTime = time.Time{}

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y

	switch {
	case dx*dx+dy*dy >= gh.swipeThreshold*gh.swipeThreshold:
		gh.detectSwipeDirection(dx, dy)
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	default:
		gh.triggerGesture(GestureTap)
	}
}

// TouchCancel drops the touch in progress
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
		return
	}
	if dy > 0 {
		gh.triggerGesture(GestureSwipeDown)
	} else {
		gh.triggerGesture(GestureSwipeUp)
	}
}

func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// PullToRefresh wraps content and calls refresh when the user swipes down on
// a touch device. Repeated swipes within RefreshCooldown are ignored.
type PullToRefresh struct {
	widget.BaseWidget

	content        fyne.CanvasObject
	gestureHandler *GestureHandler
	refreshFunc    func()
	now            func() time.Time
	lastRefresh    time.Time
}

// NewPullToRefresh creates a new pull-to-refresh wrapper
func NewPullToRefresh(content fyne.CanvasObject, refreshFunc func()) *PullToRefresh {
	ptr := &PullToRefresh{
		content:     content,
		refreshFunc: refreshFunc,
		now:         time.Now,
	}
	ptr.gestureHandler = NewGestureHandler(ptr.handleGesture)
	ptr.ExtendBaseWidget(ptr)
	return ptr
}

// CreateRenderer renders the wrapped content
func (ptr *PullToRefresh) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ptr.content)
}

func (ptr *PullToRefresh) handleGesture(gesture GestureType) {
	if gesture != GestureSwipeDown || ptr.refreshFunc == nil {
		return
	}
	now := ptr.now()
	if !ptr.lastRefresh.IsZero() && now.Sub(ptr.lastRefresh) < RefreshCooldown {
		return
	}
	ptr.lastRefresh = now
	ptr.refreshFunc()
}

// TouchDown handles touch down events
func (ptr *PullToRefresh) TouchDown(event *mobile.TouchEvent) {
	ptr.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (ptr *PullToRefresh) TouchUp(event *mobile.TouchEvent) {
	ptr.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (ptr *PullToRefresh) TouchCancel(event *mobile.TouchEvent) {
	ptr.gestureHandler.TouchCancel(event)
}

var _ mobile.Touchable = (*PullToRefresh)(nil)
