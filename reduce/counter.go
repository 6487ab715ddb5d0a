package reduce

import (
	"fmt"
	"sync/atomic"
)

var GlobalStats = &Stats{}

type Stats struct {
	RecordsIn atomic.Uint64
	Partials  atomic.Uint64
	Merged    atomic.Uint64
}

func (s *Stats) String() string {
	in := s.RecordsIn.Load()
	p := s.Partials.Load()
	m := s.Merged.Load()
	return fmt.Sprintf("RecordsIn: %d, Partials: %d, Merged: %d", in, p, m)
}
