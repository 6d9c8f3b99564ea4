package cube

import (
	"fmt"
	"strconv"
	"strings"
)

// Line renders the cube as the solution file format: the 54 sticker values
// as comma-separated decimal integers, no trailing comma.
func (c *Cube) Line() string {
	var b strings.Builder
	b.Grow(3 * Surfaces)
	for i, s := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	return b.String()
}

// ParseLine parses a solution line back into a cube.
func ParseLine(line string) (*Cube, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != Surfaces {
		return nil, fmt.Errorf("solution line has %d values, want %d", len(fields), Surfaces)
	}
	var c Cube
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad sticker value %q: %w", f, err)
		}
		if v < 0 || v >= Surfaces {
			return nil, fmt.Errorf("sticker value %d out of range", v)
		}
		c[i] = uint8(v)
	}
	return &c, nil
}
