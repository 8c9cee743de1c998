// Package ids provides the id-generation strategies injected into the
// repositories. Generation is explicit so collision behavior is a
// property of the chosen generator, not an accident of the clock.
package ids

import (
	"sync/atomic"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Generator produces fresh int64 identifiers.
type Generator interface {
	NextID() int64
}

// Snowflake generates unique, roughly time-ordered ids.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a snowflake generator for the given node id.
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Snowflake{node: node}, nil
}

func (s *Snowflake) NextID() int64 {
	return s.node.Generate().Int64()
}

// Clock generates ids from the current unix-millis timestamp. This is
// the historical scheme of the stored data; two calls within the same
// millisecond collide, which callers accept when they choose it.
type Clock struct{}

func (Clock) NextID() int64 {
	return time.Now().UnixMilli()
}

// Sequence is a deterministic counter, starting after an optional
// base. Intended for tests.
type Sequence struct {
	n int64
}

// NewSequence returns a Sequence whose first id is base+1.
func NewSequence(base int64) *Sequence {
	return &Sequence{n: base}
}

func (s *Sequence) NextID() int64 {
	return atomic.AddInt64(&s.n, 1)
}
