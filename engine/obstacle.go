package engine

import "math"

// Obstacle is the collision rectangle of one piece of falling debris.
// Row and Column are the fractional top-left corner; collisions are tested in rounded cell space
type Obstacle struct {
	Row     float64
	Column  float64
	Rows    int
	Columns int
}

// NewObstacle creates an obstacle of the given size
func NewObstacle(row, column float64, rows, columns int) *Obstacle {
	return &Obstacle{Row: row, Column: column, Rows: rows, Columns: columns}
}

// Collides reports whether a rows x columns box at (row, column) overlaps the obstacle
func (o *Obstacle) Collides(row, column float64, rows, columns int) bool {
	return overlaps(cell(o.Row), o.Rows, cell(row), rows) &&
		overlaps(cell(o.Column), o.Columns, cell(column), columns)
}

// overlaps tests half-open spans [a, a+an) and [b, b+bn)
func overlaps(a, an, b, bn int) bool {
	return a < b+bn && b < a+an
}

func cell(v float64) int {
	return int(math.RoundToEven(v))
}

// Obstacles is the ordered collection of live obstacles
type Obstacles struct {
	items []*Obstacle
}

// NewObstacles creates an empty collection
func NewObstacles() *Obstacles {
	return &Obstacles{}
}

// Add appends an obstacle
func (c *Obstacles) Add(o *Obstacle) {
	c.items = append(c.items, o)
}

// Remove deletes an obstacle keeping the order of the rest, returns false if it was not live
func (c *Obstacles) Remove(o *Obstacle) bool {
	for i, item := range c.items {
		if item == o {
			copy(c.items[i:], c.items[i+1:])
			c.items[len(c.items)-1] = nil
			c.items = c.items[:len(c.items)-1]
			return true
		}
	}
	return false
}

// Contains reports whether the obstacle is live
func (c *Obstacles) Contains(o *Obstacle) bool {
	for _, item := range c.items {
		if item == o {
			return true
		}
	}
	return false
}

// Len returns the number of live obstacles
func (c *Obstacles) Len() int {
	return len(c.items)
}

// All returns a copy of the live obstacles in collection order
func (c *Obstacles) All() []*Obstacle {
	out := make([]*Obstacle, len(c.items))
	copy(out, c.items)
	return out
}

// FirstCollision returns the first obstacle in collection order overlapping the box, or nil
func (c *Obstacles) FirstCollision(row, column float64, rows, columns int) *Obstacle {
	for _, item := range c.items {
		if item.Collides(row, column, rows, columns) {
			return item
		}
	}
	return nil
}

// HitSet records obstacles destroyed by a shot until their debris task reacts
type HitSet struct {
	hits map[*Obstacle]struct{}
}

// NewHitSet creates an empty set
func NewHitSet() *HitSet {
	return &HitSet{hits: make(map[*Obstacle]struct{})}
}

// Mark records a hit
func (h *HitSet) Mark(o *Obstacle) {
	h.hits[o] = struct{}{}
}

// Take reports whether the obstacle was hit and clears the record
func (h *HitSet) Take(o *Obstacle) bool {
	if _, ok := h.hits[o]; !ok {
		return false
	}
	delete(h.hits, o)
	return true
}

// Len returns the number of hits not yet taken
func (h *HitSet) Len() int {
	return len(h.hits)
}
