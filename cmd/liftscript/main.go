package main

import (
	"context"

	"github.com/Settc/liftscript/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
