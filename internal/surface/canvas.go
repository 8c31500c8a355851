package surface

import (
	"sync"

	"github.com/jbeda/geom"
)

var _ Surface = (*Canvas)(nil)

// Canvas keeps items in creation order, which is also their draw order.
// It is safe for concurrent use so that a renderer may read it while the
// driver updates it.
type Canvas struct {
	mu     sync.RWMutex
	nextID ItemID
	order  []ItemID
	items  map[ItemID]*Item
}

func NewCanvas() *Canvas {
	return &Canvas{
		nextID: 1,
		items:  map[ItemID]*Item{},
	}
}

func (c *Canvas) add(it Item) ItemID {
	c.mu.Lock()
	defer c.mu.Unlock()

	it.ID = c.nextID
	c.nextID++
	c.items[it.ID] = &it
	c.order = append(c.order, it.ID)
	return it.ID
}

func (c *Canvas) CreateMarker(bounds geom.Rect) ItemID {
	return c.add(Item{Kind: KindMarker, Bounds: bounds})
}

func (c *Canvas) CreatePolygon() ItemID {
	return c.add(Item{Kind: KindPolygon})
}

// CreateCircle adds an outlined circle inscribed in bounds.
func (c *Canvas) CreateCircle(bounds geom.Rect, dashed bool) ItemID {
	return c.add(Item{Kind: KindCircle, Bounds: bounds, Dashed: dashed})
}

func (c *Canvas) CreateText(at geom.Coord, text string) ItemID {
	return c.add(Item{Kind: KindText, At: at, Text: text})
}

func (c *Canvas) SetCoords(id ItemID, flat []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if it, ok := c.items[id]; ok {
		it.Coords = append(it.Coords[:0], flat...)
	}
}

func (c *Canvas) SetBounds(id ItemID, bounds geom.Rect) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if it, ok := c.items[id]; ok {
		it.Bounds = bounds
	}
}

func (c *Canvas) SetText(id ItemID, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if it, ok := c.items[id]; ok {
		it.Text = text
	}
}

func (c *Canvas) Delete(id ItemID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Item returns a copy of the item with the given id.
func (c *Canvas) Item(id ItemID) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, ok := c.items[id]
	if !ok {
		return Item{}, false
	}
	return it.clone(), true
}

// Items returns copies of all items in draw order.
func (c *Canvas) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id].clone())
	}
	return out
}

func (c *Canvas) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

func (it *Item) clone() Item {
	cp := *it
	if it.Coords != nil {
		cp.Coords = append([]float64(nil), it.Coords...)
	}
	return cp
}
