package collision

import (
	"io"
	"log/slog"
)

const defaultCapacity = 64

var discardLog = slog.New(slog.NewTextHandler(io.Discard, nil))

// Registry is the frame-scoped set of hit boxes owned by the frame loop
//
// Lifecycle per frame:
//  1. Clear at the frame boundary
//  2. Stage boxes as they are drawn; queries do not see them yet
//  3. ConcatTmpHitBoxes promotes staged boxes into the live set
//  4. CheckHitBoxes queries the live set
//
// The zero value is an empty registry that logs nothing
// Not safe for concurrent use; the frame loop is the only caller
type Registry struct {
	hitBoxes    []HitBox
	tmpHitBoxes []HitBox

	capacity int
	log      *slog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger routes lifecycle debug records to l
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithCapacity pre-sizes both sequences for n boxes per frame
func WithCapacity(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		capacity: defaultCapacity,
		log:      discardLog,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.hitBoxes = make([]HitBox, 0, r.capacity)
	r.tmpHitBoxes = make([]HitBox, 0, r.capacity)
	return r
}

func (r *Registry) logger() *slog.Logger {
	if r.log == nil {
		return discardLog
	}
	return r.log
}

// Clear discards every live and staged box
func (r *Registry) Clear() {
	r.logger().Debug("clear", "live", len(r.hitBoxes), "staged", len(r.tmpHitBoxes))
	// Fresh backing arrays: slices handed out by HitBoxes stay valid for the previous frame
	r.hitBoxes = make([]HitBox, 0, r.capacity)
	r.tmpHitBoxes = make([]HitBox, 0, r.capacity)
}

// Stage appends a box to the staging sequence
// Staged boxes are invisible to CheckHitBoxes until ConcatTmpHitBoxes runs
func (r *Registry) Stage(boxes ...HitBox) {
	r.tmpHitBoxes = append(r.tmpHitBoxes, boxes...)
}

// ConcatTmpHitBoxes appends staged boxes, in order, to the live set and empties staging
func (r *Registry) ConcatTmpHitBoxes() {
	if len(r.tmpHitBoxes) == 0 {
		return
	}
	r.logger().Debug("promote", "staged", len(r.tmpHitBoxes), "live", len(r.hitBoxes))
	r.hitBoxes = append(r.hitBoxes, r.tmpHitBoxes...)
	r.tmpHitBoxes = r.tmpHitBoxes[:0]
}

// CheckHitBoxes returns the union of tags of every live box overlapping box
// No overlap yields NewCollision(); later boxes never remove tags set by earlier ones
func (r *Registry) CheckHitBoxes(box HitBox) Collision {
	result := NewCollision()
	for _, hb := range r.hitBoxes {
		if TestCollision(box, hb) {
			result.fold(hb.Collision)
		}
	}
	return result
}

// Draw checks every part of a primitive against the live set, stages all parts,
// then promotes them, so a multi-box primitive never collides with its own parts
func (r *Registry) Draw(parts ...HitBox) Collision {
	result := NewCollision()
	for _, part := range parts {
		result.fold(r.CheckHitBoxes(part))
	}
	r.Stage(parts...)
	r.ConcatTmpHitBoxes()
	return result
}

// HitBoxes returns the live sequence; callers must not modify it
func (r *Registry) HitBoxes() []HitBox {
	return r.hitBoxes
}

// TmpHitBoxes returns the staging sequence; callers must not modify it
func (r *Registry) TmpHitBoxes() []HitBox {
	return r.tmpHitBoxes
}

// Len returns live and staged box counts
func (r *Registry) Len() (live, staged int) {
	return len(r.hitBoxes), len(r.tmpHitBoxes)
}
