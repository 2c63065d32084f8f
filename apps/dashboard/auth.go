package main

import (
	"context"
	"fmt"

	"github.com/pathshala/admin/core/session"
	"github.com/pathshala/admin/services/backend"
)

func (cli *commandLine) login(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("login")
	role := fs.String("role", string(session.RoleAdmin), "admin | supervisor")
	ident := fs.String("id", "", "UDISE code (admin) or username (supervisor)")
	adminID := fs.String("admin-id", "", "log in with an admin id instead")
	if err := parse(fs, args); err != nil {
		return err
	}

	passwd, err := cli.promptPassword()
	if err != nil {
		return err
	}

	var auth session.Authenticator = session.AuthenticatorFunc(cli.client.Login)
	creds := session.Credentials{Role: session.Role(*role), Identifier: *ident, Password: passwd}
	if *adminID != "" {
		creds = session.Credentials{Role: session.RoleAdmin, Identifier: *adminID, Password: passwd}
		auth = session.AuthenticatorFunc(func(ctx context.Context, creds session.Credentials) (session.LoginResult, error) {
			return cli.client.AdminLogin(ctx, backendsvc.AdminLoginRequest{AdminID: creds.Identifier, Password: creds.Password})
		})
	}

	res, err := cli.sessions.Authenticate(ctx, auth, creds)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s (%s)\n", cli.loc.T("loginSuccess"), res.Role)
	return nil
}

func (cli *commandLine) logout(ctx context.Context, _ []string) error {
	if err := cli.sessions.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, cli.loc.T("logoutSuccess"))
	return nil
}

func (cli *commandLine) whoami(_ context.Context, _ []string) error {
	sess := cli.sessions.Current()
	if !sess.IsAuthenticated() {
		fmt.Fprintln(cli.out, cli.loc.T("notLoggedIn"))
		return nil
	}
	fmt.Fprintf(cli.out, "role: %s\nlanguage: %s\n", sess.Role, cli.loc.Language())
	return nil
}
