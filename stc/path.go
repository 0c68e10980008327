package stc

import "fmt"

// Len returns the number of segments.
func (p Path) Len() int { return len(p.Segments) }

// Cells returns the visited fine cells in order: the first segment's origin
// followed by every segment's destination.
func (p Path) Cells() []FinePoint {
	if len(p.Segments) == 0 {
		return nil
	}
	out := make([]FinePoint, 0, len(p.Segments)+1)
	out = append(out, p.Segments[0].From)
	for _, s := range p.Segments {
		out = append(out, s.To)
	}

	return out
}

// Validate checks p against the region it was generated for: every segment
// is a unit move, consecutive segments chain, and the cells cover each fine
// sub-cell of the region exactly once.
func (p Path) Validate(mask []bool, rows, cols int) error {
	if rows <= 0 || cols <= 0 || len(mask) != rows*cols {
		return fmt.Errorf("%w: len %d, %d×%d", ErrDimensionMismatch, len(mask), rows, cols)
	}
	want := 0
	for _, in := range mask {
		if in {
			want += 4
		}
	}
	if want == 0 {
		if len(p.Segments) != 0 {
			return fmt.Errorf("%w: %d segments for an empty region", ErrInvalidPath, len(p.Segments))
		}
		return nil
	}
	if len(p.Segments) != want-1 {
		return fmt.Errorf("%w: %d segments, want %d", ErrInvalidPath, len(p.Segments), want-1)
	}

	for i, s := range p.Segments {
		dr, dc := s.To.Row-s.From.Row, s.To.Col-s.From.Col
		if dr*dr+dc*dc != 1 {
			return fmt.Errorf("%w: segment %d is not a unit move", ErrInvalidPath, i)
		}
		if i > 0 && p.Segments[i-1].To != s.From {
			return fmt.Errorf("%w: segment %d does not start where segment %d ends", ErrInvalidPath, i, i-1)
		}
	}

	seen := make([]bool, 4*rows*cols)
	for _, f := range p.Cells() {
		if f.Row < 0 || f.Row >= 2*rows || f.Col < 0 || f.Col >= 2*cols || !mask[(f.Row/2)*cols+f.Col/2] {
			return fmt.Errorf("%w: cell (%d,%d) is outside the region", ErrInvalidPath, f.Row, f.Col)
		}
		k := f.Row*2*cols + f.Col
		if seen[k] {
			return fmt.Errorf("%w: cell (%d,%d) visited twice", ErrInvalidPath, f.Row, f.Col)
		}
		seen[k] = true
	}

	return nil
}
