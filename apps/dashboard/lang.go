package main

import (
	"context"
	"fmt"

	"github.com/pathshala/admin/core/i18n"
)

func (cli *commandLine) lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(cli.out, "%s: %s\n", cli.loc.T("language"), cli.loc.Language())
		return nil
	}

	lang, err := i18n.ParseLanguage(args[0])
	if err != nil {
		return err
	}
	if err := cli.loc.SetLanguage(ctx, lang); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s: %s\n", cli.loc.T("language"), cli.loc.Language())
	return nil
}
