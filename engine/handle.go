package engine

import "strconv"

// Handle is a non-owning reference to a figure owned by a Level. A handle
// stops resolving once its figure is removed, even if the slot is reused.
type Handle uint64

type handleID uint32
type generation uint32

const handleIDBits = 32

func makeHandle(id handleID, gen generation) Handle {
	return Handle(uint64(gen)<<handleIDBits | uint64(id))
}

func (h Handle) id() handleID {
	return handleID(uint32(h))
}

func (h Handle) generation() generation {
	return generation(uint32(uint64(h) >> handleIDBits))
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

func (h Handle) Valid() bool {
	return h.id() > 0
}

// handleStore tracks slot generations and free ids.
type handleStore struct {
	gen  []generation
	free []handleID
}

func (s *handleStore) create() Handle {
	var id handleID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		id = handleID(len(s.gen))
	}
	return makeHandle(id, s.gen[id-1])
}

func (s *handleStore) destroy(h Handle) bool {
	if !s.isAlive(h) {
		return false
	}
	s.gen[h.id()-1]++
	s.free = append(s.free, h.id())
	return true
}

func (s *handleStore) isAlive(h Handle) bool {
	id := h.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.gen[id-1] == h.generation()
}

