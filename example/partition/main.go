package main

import (
	"fmt"
	"strconv"

	"github.com/yeqown/crapwow/hash"
	"github.com/yeqown/crapwow/partition"
)

func main() {
	p, err := partition.New("cache-1,cache-2,cache-3")
	if err != nil {
		panic(err)
	}

	count := make(map[string]int)
	for i := 0; i < 10000; i++ {
		node, err := p.PickString("user:" + strconv.Itoa(i))
		if err != nil {
			panic(err)
		}
		count[node.Name]++
	}

	for _, node := range p.Nodes() {
		fmt.Printf("%s: %d keys\n", node.Name, count[node.Name])
	}

	// same nodes, picked with murmur3 by modulo
	p2, err := partition.New("cache-1,cache-2,cache-3",
		partition.WithPickBuilder(partition.NewModuloPickBuilderWithHash(hash.NewMurmur3(0))),
	)
	if err != nil {
		panic(err)
	}

	node, err := p2.PickString("user:42")
	if err != nil {
		panic(err)
	}
	fmt.Println("user:42 ->", node.Name)
}
