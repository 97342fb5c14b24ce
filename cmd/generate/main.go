package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/kxue43/generate/generate"
	"github.com/kxue43/generate/version"
)

func newParser(cli *generate.Cmd, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("generate"),
		kong.Description("Render a template file and write the result outside the templates/ tree (" + version.FromBuildInfo() + ")."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}, options...)

	return kong.New(cli, options...)
}

func main() {
	var cli generate.Cmd

	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
