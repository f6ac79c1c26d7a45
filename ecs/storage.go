package ecs

// entityStore tracks entity generations and free ids.
type entityStore struct {
	nextID int
	gen    []int
	free   []int
}

func (s *entityStore) create() Entity {
	var id int
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
		s.gen = append(s.gen, 0)
	}
	return Entity{ID: id, Gen: s.gen[id-1]}
}

func (s *entityStore) destroy(e Entity) bool {
	if e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	idx := e.ID - 1
	if s.gen[idx] != e.Gen {
		return false
	}
	s.gen[idx]++
	s.free = append(s.free, e.ID)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	return s.gen[e.ID-1] == e.Gen
}

// entityFor rebuilds a live handle from a raw id.
func (s *entityStore) entityFor(id int) Entity {
	if id <= 0 || id > len(s.gen) {
		return Entity{}
	}
	return Entity{ID: id, Gen: s.gen[id-1]}
}

// aliveIDs appends all live entity ids to out.
func (s *entityStore) aliveIDs(out []Entity) []Entity {
	freed := make(map[int]bool, len(s.free))
	for _, id := range s.free {
		freed[id] = true
	}
	for id := 1; id <= s.nextID; id++ {
		if !freed[id] {
			out = append(out, Entity{ID: id, Gen: s.gen[id-1]})
		}
	}
	return out
}
