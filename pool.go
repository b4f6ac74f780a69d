package inspectx

import "sync"

var printerPool = sync.Pool{
	New: func() any {
		return &printer{visited: make(visitedSet)}
	},
}

func acquirePrinter(opts *Options) *printer {
	st, err := resolveStylist(opts)
	if err != nil {
		panic("inspectx: " + err.Error())
	}
	p := printerPool.Get().(*printer)
	p.opts = opts
	p.st = st
	return p
}

func releasePrinter(p *printer) {
	if p == nil {
		return
	}
	p.opts = nil
	p.st = stylist{}
	// The visited set empties itself on every exit path; clear anyway so a
	// panicking custom hook cannot leak identities into an unrelated call.
	clear(p.visited)
	printerPool.Put(p)
}
