package main

import (
	"fmt"

	"github.com/yeqown/crapwow"
)

func main() {
	if err := crapwow.Verify(); err != nil {
		panic(err)
	}

	fmt.Printf("%#016x\n", crapwow.Hash([]byte("hello"), 0))
	fmt.Printf("%#016x\n", crapwow.HashString("hello", 0))

	h := crapwow.New(crapwow.WithSeed(42))
	for _, key := range []string{"hello", "hello1", "hello2"} {
		fmt.Printf("%-8s %#016x\n", key, h.HashString(key))
	}
}
