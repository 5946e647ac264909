// Package collide detects overlapping pairs among axis-aligned boxes in 2D.
//
// The three Check functions are standalone pair scanners over a slice of
// boxes. Manager adds bookkeeping on top: it tracks which registered boxes
// are stationary and caches their pairwise results between queries.
//
// All pair producers are lazy iter sequences. Consumers may stop pulling at
// any point; nothing runs in the background. None of the types here are safe
// for concurrent use.
package collide

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

var (
	ErrInvalidGeometry   = errors.New("width and height must be positive and all coordinates finite")
	ErrNotRegistered     = errors.New("box is not registered with this manager")
	ErrAlreadyRegistered = errors.New("box is already registered with a manager")
)

var boxIDCounter uint64

// Box is an axis-aligned rectangle anchored at its bottom-left corner.
// Boxes are identity-distinct: two boxes with equal geometry are still
// different boxes, and collision pairs are keyed by identity.
type Box struct {
	x, y          float64
	width, height float64

	// Derived from x, y, width, height. Kept consistent by afterMove.
	halfWidth, halfHeight float64
	x2, y2                float64
	cx, cy                float64

	stationary bool
	userData   interface{}

	// Non-owning back-reference, set by Manager.Register and cleared by
	// Manager.Remove. Used only to report moves.
	manager *Manager

	id uint64
}

// NewBox returns ErrInvalidGeometry for non-positive or non-finite
// dimensions, or non-finite position. The stationary flag is fixed for the
// life of the box.
func NewBox(x, y, width, height float64, stationary bool, userdata interface{}) (*Box, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: width=%v height=%v", ErrInvalidGeometry, width, height)
	}
	if !isFinite(x) || !isFinite(y) {
		return nil, fmt.Errorf("%w: x=%v y=%v", ErrInvalidGeometry, x, y)
	}
	box := &Box{
		x:          x,
		y:          y,
		width:      width,
		height:     height,
		halfWidth:  width / 2,
		halfHeight: height / 2,
		stationary: stationary,
		userData:   userdata,
		id:         atomic.AddUint64(&boxIDCounter, 1),
	}
	box.afterMove()
	return box, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// afterMove recomputes every derived field. It must run on any position
// change so that readers never see a half-updated box.
func (box *Box) afterMove() {
	box.x2 = box.x + box.width
	box.y2 = box.y + box.height
	box.cx = box.x + box.halfWidth
	box.cy = box.y + box.halfHeight
}

// Move repositions the bottom-left corner. If the box is stationary and
// registered with a manager, the manager's stationary cache is invalidated.
// Moving an unowned box succeeds silently.
func (box *Box) Move(x, y float64) error {
	if !isFinite(x) || !isFinite(y) {
		return fmt.Errorf("%w: x=%v y=%v", ErrInvalidGeometry, x, y)
	}
	box.x = x
	box.y = y
	box.afterMove()
	if box.manager != nil && box.stationary {
		box.manager.invalidateStationaryCache()
	}
	return nil
}

// Overlaps reports whether two distinct boxes overlap, boundary touches
// included. The test compares center distance against summed half extents on
// each axis; unlike corner-containment checks it catches two thin boxes
// crossing like a plus sign, where neither box holds a corner of the other.
func (box *Box) Overlaps(other *Box) bool {
	return box != other &&
		math.Abs(box.cx-other.cx) <= box.halfWidth+other.halfWidth &&
		math.Abs(box.cy-other.cy) <= box.halfHeight+other.halfHeight
}

func (box *Box) X() float64 { return box.x }
func (box *Box) Y() float64 { return box.y }

// X2 and Y2 are the top-right corner.
func (box *Box) X2() float64 { return box.x2 }
func (box *Box) Y2() float64 { return box.y2 }

func (box *Box) Width() float64      { return box.width }
func (box *Box) Height() float64     { return box.height }
func (box *Box) HalfWidth() float64  { return box.halfWidth }
func (box *Box) HalfHeight() float64 { return box.halfHeight }

func (box *Box) Center() Vector {
	return Vector{box.cx, box.cy}
}

func (box *Box) Stationary() bool {
	return box.stationary
}

func (box *Box) UserData() interface{} {
	return box.userData
}

func (box *Box) SetUserData(data interface{}) {
	box.userData = data
}

// Manager returns the manager this box is registered with, or nil.
func (box *Box) Manager() *Manager {
	return box.manager
}

func (box *Box) String() string {
	return fmt.Sprintf("Box(x=%v, y=%v, width=%v, height=%v, stationary=%v)", box.x, box.y, box.width, box.height, box.stationary)
}
