package console

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Buttons, as bits:
// 0 - A
// 1 - B
// 2 - Select
// 3 - Start
// 4 - Up
// 5 - Down
// 6 - Left
// 7 - Right
var keys = []ebiten.Key{
	ebiten.KeyA,         // A
	ebiten.KeyS,         // B
	ebiten.KeyShiftLeft, // Select
	ebiten.KeyEnter,     // Start
	ebiten.KeyUp,        // Up
	ebiten.KeyDown,      // Down
	ebiten.KeyLeft,      // Left
	ebiten.KeyRight,     // Right
}

// Controller models the NES joypad's serial shift-register protocol
// exposed to the CPU through 0x4016.
type Controller struct {
	strobe  bool
	buttons uint8
	idx     uint8
}

// write handles a CPU write to the controller port. Writing 1
// latches the current button snapshot and resets the read index;
// writing 0 ends the strobe.
func (c *Controller) write(val uint8) {
	switch val & 0x01 {
	case 1:
		c.strobe = true
		c.buttons = poll()
		c.idx = 0
	case 0:
		c.strobe = false
	}
}

// read handles a CPU read of the controller port. While strobe is
// held, reads continuously return the live state of button 0 (A);
// otherwise successive reads emit one latched button bit at a time,
// and return 1 once all 8 bits have been read.
func (c *Controller) read() uint8 {
	if c.strobe {
		return poll() & 0x01
	}

	if c.idx > 7 {
		return 1
	}

	ret := (c.buttons >> c.idx) & 0x01
	c.idx++
	return ret
}

func poll() uint8 {
	var buttons uint8
	for i, key := range keys {
		if ebiten.IsKeyPressed(key) {
			buttons |= 1 << i
		}
	}
	return buttons
}
