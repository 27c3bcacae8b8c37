package memctx

import (
	"os"

	"github.com/google/pprof/profile"
)

// Snapshot builds a pprof heap-style profile of every live allocation
// reachable from the root context, one sample per context with "context"
// set to its name, in the value=bytes/count=allocations shape pprof's
// heap profile uses. It mirrors wzprof's ProfilerListener.BuildProfile:
// a single pass over collected data into profile.Sample/profile.Location
// /profile.Function, except the thing being profiled is arena usage
// instead of guest function call stacks.
func Snapshot() *profile.Profile {
	prof := &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "allocations", Unit: "count"},
			{Type: "bytes", Unit: "bytes"},
		},
	}

	functions := map[string]*profile.Function{}
	locations := map[string]*profile.Location{}

	var funcFor = func(name string) *profile.Function {
		if fn, ok := functions[name]; ok {
			return fn
		}
		fn := &profile.Function{
			ID:   uint64(len(functions) + 1),
			Name: name,
		}
		functions[name] = fn
		prof.Function = append(prof.Function, fn)
		return fn
	}
	var locFor = func(name string) *profile.Location {
		if loc, ok := locations[name]; ok {
			return loc
		}
		fn := funcFor(name)
		loc := &profile.Location{
			ID:   uint64(len(locations) + 1),
			Line: []profile.Line{{Function: fn}},
		}
		locations[name] = loc
		prof.Location = append(prof.Location, loc)
		return loc
	}

	var walk func(c *Context)
	walk = func(c *Context) {
		count := 0
		bytes := 0
		for _, a := range c.allocs {
			if a.live {
				count++
				bytes += a.size
			}
		}
		if count > 0 {
			prof.Sample = append(prof.Sample, &profile.Sample{
				Location: []*profile.Location{locFor(c.name)},
				Value:    []int64{int64(count), int64(bytes)},
				Label:    map[string][]string{"context": {c.name}},
			})
		}
		for _, child := range c.children {
			walk(child)
		}
	}
	walk(root)

	return prof
}

// WriteProfile writes prof to path, adapted directly from wzprof's
// WriteProfile helper of the same signature.
func WriteProfile(path string, prof *profile.Profile) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return prof.Write(w)
}
