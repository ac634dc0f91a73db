package main

import (
	"github.com/alecthomas/kong"
	"github.com/lepinkainen/maskblend/cmd"
	"github.com/lepinkainen/maskblend/types"
)

var Version = "dev"

type CLI struct {
	cmd.RunCmd
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("maskblend"),
		kong.Description("Replace the black and white regions of a video with two overlay images."),
	)
	err := ctx.Run(&types.AppContext{Version: Version})
	ctx.FatalIfErrorf(err)
}
