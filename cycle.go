package inspectx

// visitedSet tracks the identities on the active recursion path. It is
// created per top-level call and threaded by reference through every
// recursive render, so only true ancestors are reported as circular.
type visitedSet map[uintptr]struct{}

// enter registers v on the active path. It reports whether descent is
// allowed: false means v is its own ancestor and must render as [Circular].
// The returned leave func must run on every exit path; callers defer it.
func (vs visitedSet) enter(v any) (leave func(), ok bool) {
	id, hasID := identityOf(v)
	if !hasID {
		return func() {}, true
	}
	if _, onPath := vs[id]; onPath {
		return nil, false
	}
	vs[id] = struct{}{}
	return func() { delete(vs, id) }, true
}
