package feather2d

import (
	"unsafe"

	"github.com/akmonengine/feather2d/actor"
)

const (
	TRIGGER_ENTER EventType = iota
	COLLISION_ENTER
	TRIGGER_STAY
	COLLISION_STAY
	TRIGGER_EXIT
	COLLISION_EXIT
)

type pairKey struct {
	bodyA *actor.Body
	bodyB *actor.Body
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(bodyA, bodyB *actor.Body) pairKey {
	ptrA := uintptr(unsafe.Pointer(bodyA))
	ptrB := uintptr(unsafe.Pointer(bodyB))

	if ptrB < ptrA {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{bodyA: bodyA, bodyB: bodyB}
}

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Trigger events
type TriggerEnterEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e TriggerEnterEvent) Type() EventType { return TRIGGER_ENTER }

type TriggerStayEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e TriggerStayEvent) Type() EventType { return TRIGGER_STAY }

type TriggerExitEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e TriggerExitEvent) Type() EventType { return TRIGGER_EXIT }

// Collision events carry the query result of the detection that produced them
type CollisionEnterEvent struct {
	BodyA  *actor.Body
	BodyB  *actor.Body
	Result Result
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	BodyA  *actor.Body
	BodyB  *actor.Body
	Result Result
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events tracks overlapping pairs across detections to emit Enter/Stay/Exit events.
// The zero value is ready to use.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Overlap tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]Result
	currentActivePairs  map[pairKey]Result
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]Result),
		currentActivePairs:  make(map[pairKey]Result),
	}
}

func (e *Events) init() {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	if e.previousActivePairs == nil {
		e.previousActivePairs = make(map[pairKey]Result)
	}
	if e.currentActivePairs == nil {
		e.currentActivePairs = make(map[pairKey]Result)
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.init()
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordResults marks the overlapping pairs of a detection and returns how many there are
func (e *Events) recordResults(results []Result) int {
	e.init()

	n := 0
	for _, r := range results {
		if !r.Overlap {
			continue
		}
		e.currentActivePairs[makePairKey(r.BodyA, r.BodyB)] = r
		n++
	}

	return n
}

// forget drops every tracked pair involving body, without emitting an exit event
func (e *Events) forget(body *actor.Body) {
	for pair := range e.previousActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(e.previousActivePairs, pair)
		}
	}
}

// processCollisionEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events) processCollisionEvents() {
	// Detect Enter and Stay events
	for pair, r := range e.currentActivePairs {
		isTrigger := r.BodyA.IsTrigger || r.BodyB.IsTrigger

		if _, ok := e.previousActivePairs[pair]; ok {
			// Pair was active before and still is, Stay
			if isTrigger {
				e.buffer = append(e.buffer, TriggerStayEvent{BodyA: r.BodyA, BodyB: r.BodyB})
			} else {
				e.buffer = append(e.buffer, CollisionStayEvent{BodyA: r.BodyA, BodyB: r.BodyB, Result: r})
			}
		} else {
			// New pair, Enter
			if isTrigger {
				e.buffer = append(e.buffer, TriggerEnterEvent{BodyA: r.BodyA, BodyB: r.BodyB})
			} else {
				e.buffer = append(e.buffer, CollisionEnterEvent{BodyA: r.BodyA, BodyB: r.BodyB, Result: r})
			}
		}
	}

	// Detect Exit events
	for pair, r := range e.previousActivePairs {
		if _, ok := e.currentActivePairs[pair]; ok {
			continue
		}

		// Pair was active but is no longer, Exit
		if r.BodyA.IsTrigger || r.BodyB.IsTrigger {
			e.buffer = append(e.buffer, TriggerExitEvent{BodyA: r.BodyA, BodyB: r.BodyB})
		} else {
			e.buffer = append(e.buffer, CollisionExitEvent{BodyA: r.BodyA, BodyB: r.BodyB})
		}
	}

	// Swap for next detection and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.init()
	e.processCollisionEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
