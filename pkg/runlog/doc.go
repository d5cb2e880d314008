// Package runlog collects categorized result messages for one pipeline run
// and renders them as console text, JSON, CSV or an HTML fragment.
//
// Quick start:
//
//	log := runlog.New()
//	log.DataQuality("NY", "Looking kinda scary. > 50K")
//	log.DataSource("TX", "We're missing stuff, find it")
//
//	log.Consolidate()
//	log.Print(os.Stdout)
//
// Each message carries the processor time consumed since the previous one
// was recorded, a cheap profiling signal for the work between log calls.
// Messages tagged with a grouping key via GroupBy are candidates for
// consolidation: bursts of more than ten repeats collapse into a single
// summarized line.
//
// A Log belongs to one run and one goroutine; callers recording from
// several goroutines must serialize access.
package runlog
