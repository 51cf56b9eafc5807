package main

import (
	"log"

	"github.com/modelctx/modelctx/cmd/modelctx"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	modelctx.Execute()
}
