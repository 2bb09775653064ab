// Command wootdemo exercises the woot, set and causalgraph packages with a
// pair of simulated replicas: the operations typed at replica A are handed
// to replica B in-process, with no real transport.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/go-woot/woot/causalgraph"
	"github.com/go-woot/woot/id"
	"github.com/go-woot/woot/set"
	"github.com/go-woot/woot/woot"
)

var text = flag.String("text", "hello", "text to type at replica A before merging")

func main() {
	flag.Parse()

	siteA := id.NewUUIDSite()
	siteB := id.NewUUIDSite()
	log.Printf("replica A site: %v", siteA)
	log.Printf("replica B site: %v", siteB)

	a := woot.New[id.UUIDSite, rune](siteA)
	b := woot.New[id.UUIDSite, rune](siteB)

	var ops []woot.Op[id.UUIDSite, rune]
	for i, r := range []rune(*text) {
		op, err := a.GenerateInsert(i, r)
		if err != nil {
			log.Fatalf("insert %d: %v", i, err)
		}
		ops = append(ops, op)
	}

	for _, op := range ops {
		b.Enqueue(op)
	}
	b.ApplyPending()

	fmt.Printf("replica A: %s\n", string(a.Value()))
	fmt.Printf("replica B: %s\n", string(b.Value()))

	tags := demoTags()
	fmt.Printf("merged tags: %v\n", tags.Present())

	graph := demoGraph(siteA, siteB)
	for _, site := range graph.Sites() {
		fmt.Printf("yarn %v: %d atoms\n", site, graph.Get(site).Len())
	}
}

// demoTags shows a small PN-Set merge: two replicas tag and untag concurrently.
func demoTags() set.PNSet[string] {
	s1 := set.EmptyPNSet[string]().Add("draft").Add("reviewed").Remove("draft")
	s2 := set.EmptyPNSet[string]().Add("draft").Add("published")
	return s1.Merge(s2)
}

// demoGraph shows a tiny causal graph with one atom per site, merged.
func demoGraph(siteA, siteB id.UUIDSite) *causalgraph.Graph[string, uuid.UUID] {
	ga := causalgraph.NewGraph[string, uuid.UUID]()
	ga.Get(uuid.UUID(siteA)).Insert("a1", nil)

	gb := causalgraph.NewGraph[string, uuid.UUID]()
	gb.Get(uuid.UUID(siteB)).Insert("b1", nil)

	return causalgraph.Merge(ga, gb)
}
