package drift

// DockEdge names one of the three screen edges that collect minimized
// elements.
type DockEdge uint8

const (
	DockLeft DockEdge = iota
	DockRight
	DockBottom
)

// String returns the edge name.
func (e DockEdge) String() string {
	switch e {
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ElementState is the lifecycle state of a spatial element. An element is in
// exactly one state at any time.
type ElementState uint8

const (
	Expanded ElementState = iota
	Minimized
)

// SpatialElement is a dockable UI element tracked by the registry. Geometry
// is screen-space; Edge is meaningful only while State is Minimized.
type SpatialElement struct {
	ID       string
	Kind     string
	Geometry Rect
	State    ElementState
	Edge     DockEdge

	// savedGeometry is the geometry captured at minimize time, retained
	// unmodified until restore.
	savedGeometry Rect
}

// SpatialRegistry tracks the minimize/restore lifecycle and dock-edge
// membership of arbitrary UI elements. Elements are in exactly one dock (or
// none, if expanded) at all times; Restore is the only transition that leaves
// a dock. Dock lists keep insertion order, oldest first, so stagger-delay
// animations read naturally.
//
// A registry is owned by exactly one controller instance; multiple canvases
// must use independent registries.
type SpatialRegistry struct {
	elements map[string]*SpatialElement
	docks    map[DockEdge][]string
}

// NewSpatialRegistry creates an empty registry.
func NewSpatialRegistry() *SpatialRegistry {
	return &SpatialRegistry{
		elements: make(map[string]*SpatialElement),
		docks:    make(map[DockEdge][]string),
	}
}

// Register creates an element in the Expanded state with the given geometry
// and returns it. Re-registering an id that already exists is a caller error
// with undefined behavior; the registry does not detect it.
func (r *SpatialRegistry) Register(id, kind string, geometry Rect) *SpatialElement {
	el := &SpatialElement{ID: id, Kind: kind, Geometry: geometry}
	r.elements[id] = el
	return el
}

// Unregister destroys an element, removing it from any dock. Unknown ids are
// no-ops.
func (r *SpatialRegistry) Unregister(id string) {
	el, ok := r.elements[id]
	if !ok {
		return
	}
	if el.State == Minimized {
		r.docks[el.Edge] = removeID(r.docks[el.Edge], id)
	}
	delete(r.elements, id)
}

// Element looks up an element by id.
func (r *SpatialRegistry) Element(id string) (*SpatialElement, bool) {
	el, ok := r.elements[id]
	return el, ok
}

// SetGeometry updates an expanded element's live geometry. Minimized elements
// keep their preserved geometry; the update is dropped for them so the
// minimize-time snapshot survives intact.
func (r *SpatialRegistry) SetGeometry(id string, geometry Rect) {
	el, ok := r.elements[id]
	if !ok || el.State == Minimized {
		return
	}
	el.Geometry = geometry
}

// Minimize transitions an expanded element to Minimized on the given edge,
// preserving its current geometry for later restoration and appending it to
// the edge's dock. Returns false for unknown or already-minimized ids.
func (r *SpatialRegistry) Minimize(id string, edge DockEdge) bool {
	el, ok := r.elements[id]
	if !ok || el.State == Minimized {
		return false
	}
	el.State = Minimized
	el.Edge = edge
	el.savedGeometry = el.Geometry
	r.docks[edge] = append(r.docks[edge], id)
	return true
}

// Restore transitions a minimized element back to Expanded, removes it from
// its dock, and returns the geometry preserved at minimize time, guaranteed
// unchanged since then. Returns false for unknown or already-expanded ids.
func (r *SpatialRegistry) Restore(id string) (Rect, bool) {
	el, ok := r.elements[id]
	if !ok || el.State != Minimized {
		return Rect{}, false
	}
	r.docks[el.Edge] = removeID(r.docks[el.Edge], id)
	el.State = Expanded
	el.Geometry = el.savedGeometry
	return el.savedGeometry, true
}

// DockElements returns the elements currently minimized to the given edge in
// insertion order, oldest first.
func (r *SpatialRegistry) DockElements(edge DockEdge) []*SpatialElement {
	ids := r.docks[edge]
	out := make([]*SpatialElement, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.elements[id])
	}
	return out
}

// DockIndex returns an element's position within its dock, or -1 when the
// element is not minimized.
func (r *SpatialRegistry) DockIndex(id string) int {
	el, ok := r.elements[id]
	if !ok || el.State != Minimized {
		return -1
	}
	for i, docked := range r.docks[el.Edge] {
		if docked == id {
			return i
		}
	}
	return -1
}

// Len returns the number of registered elements.
func (r *SpatialRegistry) Len() int {
	return len(r.elements)
}

func removeID(s []string, id string) []string {
	for i := range s {
		if s[i] == id {
			copy(s[i:], s[i+1:])
			return s[:len(s)-1]
		}
	}
	return s
}
