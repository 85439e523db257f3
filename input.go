package ggdraw

import "sync"

// pointerState mirrors the mouse. mu also guards the scale and size
// fields of Canvas against the event goroutine, which maps positions
// through them.
type pointerState struct {
	mu      sync.Mutex
	x, y    float64
	pressed bool
}

// keyboardState mirrors the keyboard. typed holds the most recent keystroke
// first; reads take from the end, so keystrokes drain oldest-first.
type keyboardState struct {
	mu    sync.Mutex
	typed []rune
	held  map[Key]struct{}
}

func (k *keyboardState) reset() {
	k.mu.Lock()
	k.typed = nil
	k.held = make(map[Key]struct{})
	k.mu.Unlock()
}

// movePointer stores the user-space position of device point (px, py).
// The caller holds c.pointer.mu.
func (c *Canvas) movePointer(px, py float64) {
	m := c.mapper()
	c.pointer.x, c.pointer.y = m.userX(px), m.userY(py)
}

// PointerPressed records a button press at device position (px, py).
// Display backends call it from their event goroutine.
func (c *Canvas) PointerPressed(px, py float64) {
	c.pointer.mu.Lock()
	defer c.pointer.mu.Unlock()
	c.movePointer(px, py)
	c.pointer.pressed = true
}

// PointerReleased records a button release at device position (px, py).
func (c *Canvas) PointerReleased(px, py float64) {
	c.pointer.mu.Lock()
	defer c.pointer.mu.Unlock()
	c.movePointer(px, py)
	c.pointer.pressed = false
}

// PointerMoved records pointer motion with no button held.
func (c *Canvas) PointerMoved(px, py float64) {
	c.pointer.mu.Lock()
	defer c.pointer.mu.Unlock()
	c.movePointer(px, py)
}

// PointerDragged records pointer motion with a button held. It does not
// change the pressed state.
func (c *Canvas) PointerDragged(px, py float64) {
	c.pointer.mu.Lock()
	defer c.pointer.mu.Unlock()
	c.movePointer(px, py)
}

// KeyTyped queues a typed character.
func (c *Canvas) KeyTyped(r rune) {
	c.keys.mu.Lock()
	defer c.keys.mu.Unlock()
	c.keys.typed = append(c.keys.typed, 0)
	copy(c.keys.typed[1:], c.keys.typed)
	c.keys.typed[0] = r
}

// KeyPressed marks k as held.
func (c *Canvas) KeyPressed(k Key) {
	c.keys.mu.Lock()
	defer c.keys.mu.Unlock()
	c.keys.held[k] = struct{}{}
}

// KeyReleased marks k as no longer held.
func (c *Canvas) KeyReleased(k Key) {
	c.keys.mu.Lock()
	defer c.keys.mu.Unlock()
	delete(c.keys.held, k)
}

// IsPointerPressed reports whether a pointer button is down.
func (c *Canvas) IsPointerPressed() bool {
	c.pointer.mu.Lock()
	defer c.pointer.mu.Unlock()
	return c.pointer.pressed
}

// PointerX returns the user-space X of the last pointer event.
func (c *Canvas) PointerX() float64 {
	c.pointer.mu.Lock()
	defer c.pointer.mu.Unlock()
	return c.pointer.x
}

// PointerY returns the user-space Y of the last pointer event.
func (c *Canvas) PointerY() float64 {
	c.pointer.mu.Lock()
	defer c.pointer.mu.Unlock()
	return c.pointer.y
}

// Pointer returns the user-space position of the last pointer event and
// whether a button is down, as one consistent snapshot.
func (c *Canvas) Pointer() (x, y float64, pressed bool) {
	c.pointer.mu.Lock()
	defer c.pointer.mu.Unlock()
	return c.pointer.x, c.pointer.y, c.pointer.pressed
}

// HasTypedKey reports whether NextTypedKey has a character to return.
func (c *Canvas) HasTypedKey() bool {
	c.keys.mu.Lock()
	defer c.keys.mu.Unlock()
	return len(c.keys.typed) > 0
}

// NextTypedKey removes and returns the oldest typed character. It returns
// ErrEmptyInput when nothing has been typed; call HasTypedKey first or
// retry later.
func (c *Canvas) NextTypedKey() (rune, error) {
	c.keys.mu.Lock()
	defer c.keys.mu.Unlock()
	n := len(c.keys.typed)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	r := c.keys.typed[n-1]
	c.keys.typed = c.keys.typed[:n-1]
	return r, nil
}

// IsKeyHeld reports whether k is currently pressed.
func (c *Canvas) IsKeyHeld(k Key) bool {
	c.keys.mu.Lock()
	defer c.keys.mu.Unlock()
	_, ok := c.keys.held[k]
	return ok
}
