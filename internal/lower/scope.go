package lower

import "github.com/cla7aye15I4nd/Tython/internal/types"

// scope is a name -> TypeID binding frame, chained to its parent for
// lexical lookup. Function bodies, comprehensions, and except handlers
// each open their own frame.
type scope struct {
	vars   map[string]types.TypeID
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{vars: make(map[string]types.TypeID), parent: parent}
}

func (s *scope) define(name string, t types.TypeID) { s.vars[name] = t }

func (s *scope) lookup(name string) (types.TypeID, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.vars[name]; ok {
			return t, true
		}
	}
	return types.NoTypeID, false
}
