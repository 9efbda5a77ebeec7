package main

import (
	"os"

	"industrial-site-be/cmd/cmsctl/commands"

	"github.com/alecthomas/kong"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("cmsctl"),
		kong.Description("Operator tooling for the site CMS."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&commands.Global{Out: os.Stdout}, cli)
	ctx.FatalIfErrorf(err)
}
