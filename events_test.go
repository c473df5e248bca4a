package feather2d

import (
	"testing"

	"github.com/akmonengine/feather2d/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestBody creates a minimal Body for event testing
func createTestBody(id any, isTrigger bool) *actor.Body {
	b := createBody(box, 0, 0, 0)
	b.Id = id
	b.IsTrigger = isTrigger
	return b
}

// createTestResult creates an overlapping Result for testing
func createTestResult(bodyA, bodyB *actor.Body) Result {
	return Result{
		Pair:    Pair{BodyA: bodyA, BodyB: bodyB},
		Overlap: true,
	}
}

type eventCapture struct {
	events []Event
}

func (ec *eventCapture) capture(event Event) {
	ec.events = append(ec.events, event)
}

func (ec *eventCapture) reset() {
	ec.events = ec.events[:0]
}

func (ec *eventCapture) count() int {
	return len(ec.events)
}

func (ec *eventCapture) hasEventType(eventType EventType) bool {
	for _, e := range ec.events {
		if e.Type() == eventType {
			return true
		}
	}
	return false
}

func subscribeAll(events *Events, capture *eventCapture) {
	for _, eventType := range []EventType{
		TRIGGER_ENTER, COLLISION_ENTER, TRIGGER_STAY, COLLISION_STAY, TRIGGER_EXIT, COLLISION_EXIT,
	} {
		events.Subscribe(eventType, capture.capture)
	}
}

func TestEvents_Subscribe(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}

	events.Subscribe(COLLISION_ENTER, capture.capture)

	assert.Len(t, events.listeners[COLLISION_ENTER], 1)
}

func TestEvents_ZeroValue(t *testing.T) {
	var events Events
	capture := &eventCapture{}
	events.Subscribe(COLLISION_ENTER, capture.capture)

	events.recordResults([]Result{createTestResult(createTestBody("A", false), createTestBody("B", false))})
	events.flush()

	assert.Equal(t, 1, capture.count())
}

func TestEvents_MultipleListeners(t *testing.T) {
	events := NewEvents()
	captures := []*eventCapture{{}, {}, {}}
	for _, c := range captures {
		events.Subscribe(COLLISION_ENTER, c.capture)
	}

	events.recordResults([]Result{createTestResult(createTestBody("A", false), createTestBody("B", false))})
	events.flush()

	for i, c := range captures {
		assert.Equal(t, 1, c.count(), "capture %d", i)
	}
}

func TestEvents_RecordResults_SkipsSeparated(t *testing.T) {
	events := NewEvents()
	a := createTestBody("A", false)
	b := createTestBody("B", false)
	c := createTestBody("C", false)

	separated := createTestResult(a, c)
	separated.Overlap = false

	n := events.recordResults([]Result{createTestResult(a, b), separated})

	assert.Equal(t, 1, n)
	assert.Len(t, events.currentActivePairs, 1)
	assert.Contains(t, events.currentActivePairs, makePairKey(a, b))
}

func TestMakePairKey_Normalization(t *testing.T) {
	a := createTestBody("A", false)
	b := createTestBody("B", false)

	assert.Equal(t, makePairKey(a, b), makePairKey(b, a))
	assert.NotEqual(t, makePairKey(a, b), makePairKey(a, createTestBody("C", false)))
}

func TestEvents_CollisionLifecycle(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	a := createTestBody("A", false)
	b := createTestBody("B", false)
	result := createTestResult(a, b)
	result.Distance = 0

	// Frame 1: Enter
	events.recordResults([]Result{result})
	events.flush()
	require.Equal(t, 1, capture.count())
	enter, ok := capture.events[0].(CollisionEnterEvent)
	require.True(t, ok)
	assert.Same(t, a, enter.BodyA)
	assert.Same(t, b, enter.BodyB)
	assert.True(t, enter.Result.Overlap)

	// Frame 2: Stay
	capture.reset()
	events.recordResults([]Result{result})
	events.flush()
	require.Equal(t, 1, capture.count())
	assert.True(t, capture.hasEventType(COLLISION_STAY))

	// Frame 3: Exit
	capture.reset()
	events.recordResults(nil)
	events.flush()
	require.Equal(t, 1, capture.count())
	exit, ok := capture.events[0].(CollisionExitEvent)
	require.True(t, ok)
	assert.Same(t, a, exit.BodyA)

	// Frame 4: nothing left to report
	capture.reset()
	events.flush()
	assert.Zero(t, capture.count())
}

func TestEvents_TriggerLifecycle(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	trigger := createTestBody("trigger", true)
	body := createTestBody("body", false)

	events.recordResults([]Result{createTestResult(body, trigger)})
	events.flush()
	assert.True(t, capture.hasEventType(TRIGGER_ENTER))
	assert.False(t, capture.hasEventType(COLLISION_ENTER))

	capture.reset()
	events.recordResults([]Result{createTestResult(body, trigger)})
	events.flush()
	assert.True(t, capture.hasEventType(TRIGGER_STAY))

	capture.reset()
	events.flush()
	assert.True(t, capture.hasEventType(TRIGGER_EXIT))
	assert.Equal(t, 1, capture.count())
}

func TestEvents_MixedTriggerAndCollision(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	a := createTestBody("A", false)
	b := createTestBody("B", false)
	trigger := createTestBody("T", true)

	events.recordResults([]Result{createTestResult(a, b), createTestResult(a, trigger)})
	events.flush()

	assert.Equal(t, 2, capture.count())
	assert.True(t, capture.hasEventType(COLLISION_ENTER))
	assert.True(t, capture.hasEventType(TRIGGER_ENTER))
}

func TestEvents_Forget(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	a := createTestBody("A", false)
	b := createTestBody("B", false)
	c := createTestBody("C", false)

	events.recordResults([]Result{createTestResult(a, b), createTestResult(b, c)})
	events.flush()
	capture.reset()

	// Forgotten pairs never exit
	events.forget(a)
	events.flush()

	require.Equal(t, 1, capture.count())
	exit, ok := capture.events[0].(CollisionExitEvent)
	require.True(t, ok)
	assert.Equal(t, makePairKey(b, c), makePairKey(exit.BodyA, exit.BodyB))
}

func TestEvents_NoListeners(t *testing.T) {
	events := NewEvents()
	events.recordResults([]Result{createTestResult(createTestBody("A", false), createTestBody("B", false))})

	assert.NotPanics(t, events.flush)
	assert.Empty(t, events.buffer)
}

func TestEvents_MultipleFrames_EnterExitEnter(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	a := createTestBody("A", false)
	b := createTestBody("B", false)
	frames := [][]Result{{createTestResult(a, b)}, nil, {createTestResult(a, b)}}
	expected := []EventType{COLLISION_ENTER, COLLISION_EXIT, COLLISION_ENTER}

	for i, frame := range frames {
		capture.reset()
		events.recordResults(frame)
		events.flush()

		require.Equal(t, 1, capture.count(), "frame %d", i)
		assert.Equal(t, expected[i], capture.events[0].Type(), "frame %d", i)
	}
}
