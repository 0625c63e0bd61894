package goenum

import gohumanize "github.com/dustin/go-humanize"

// Stats return consumption statistics for this enumeration.
//   "n_pulls"     number of elements consumed via Get, Next, Junk,
//                 Drop or a terminal operation.
//   "n_pushes"    number of Push calls.
//   "n_clones"    number of Clone calls.
//   "n_forces"    number of times the enumeration was forced.
//   "n_drops"     number of Drop calls.
//   "fastcount"   whether Count is O(1) right now.
func (e *Enum[T]) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_pulls":   e.n_pulls,
		"n_pushes":  e.n_pushes,
		"n_clones":  e.n_clones,
		"n_forces":  e.n_forces,
		"n_drops":   e.n_drops,
		"fastcount": e.Fastcount(),
	}
}

// Logstats log consumption statistics under name, provided logging is
// enabled through LogComponents.
func (e *Enum[T]) Logstats(name string) {
	stats := e.Stats()
	pulls := gohumanize.Comma(stats["n_pulls"].(int64))
	pushes := gohumanize.Comma(stats["n_pushes"].(int64))
	clones := gohumanize.Comma(stats["n_clones"].(int64))
	forces := gohumanize.Comma(stats["n_forces"].(int64))
	drops := gohumanize.Comma(stats["n_drops"].(int64))
	fmsg := "%v pulls %v, pushes %v, clones %v, forces %v, drops %v\n"
	infof(fmsg, name, pulls, pushes, clones, forces, drops)
}
