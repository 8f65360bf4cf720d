package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/stakater/developer-handbook/cmd/handbook/commands"
	foundationerrors "github.com/stakater/developer-handbook/internal/foundation/errors"
)

func main() {
	cli := &commands.CLI{}
	parser, err := commands.NewParser(cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run(&commands.Global{Out: os.Stdout})
	var exit *commands.ExitError
	if errors.As(err, &exit) {
		os.Exit(exit.Code)
	}
	foundationerrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
