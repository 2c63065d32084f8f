package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/term"

	"github.com/pathshala/admin/core"
	"github.com/pathshala/admin/core/i18n"
	"github.com/pathshala/admin/core/session"
	"github.com/pathshala/admin/services/backend"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp         = errors.New("help provided")
	errNotLoggedIn  = errors.New("not logged in: run `dashboard login` first")
	errForbidden    = errors.New("this command is not available for your role")
	suggestionRatio = 0.6
)

type commandLine struct {
	out      io.Writer
	client   *backendsvc.Client
	sessions *session.Manager
	loc      *i18n.Localizer
	logger   core.Logger
}

type command struct {
	name  string
	usage string
	roles []session.Role // nil: no login needed
	run   func(ctx context.Context, args []string) error
}

func (cli *commandLine) commands() []command {
	admins := []session.Role{session.RoleAdmin}
	anyone := []session.Role{session.RoleAdmin, session.RoleSupervisor}
	return []command{
		{name: "login", usage: "login -role admin|supervisor -id UDISE|USERNAME | login -admin-id ID - log in (password is prompted)", run: cli.login},
		{name: "logout", usage: "logout - forget the stored session", run: cli.logout},
		{name: "whoami", usage: "whoami - show the current session", run: cli.whoami},
		{name: "stats", usage: "stats - dashboard counters", roles: admins, run: cli.stats},
		{name: "reuploads", usage: "reuploads [-local] - re-upload counters", roles: admins, run: cli.reuploads},
		{name: "schools", usage: "schools [-q QUERY] [-district-code ..] [-block ..] [-cluster ..] [-udise ..] [-summary] - list schools", roles: admins, run: cli.schools},
		{name: "students", usage: "students [-udise CODE] [-q QUERY] [-class CLASS] [-filter-udise CODE] - list students", roles: admins, run: cli.students},
		{name: "teachers", usage: "teachers [-q QUERY] - list teachers", roles: admins, run: cli.teachers},
		{name: "count", usage: "count -udise CODE - number of students of one school", roles: anyone, run: cli.count},
		{name: "verify", usage: "verify -employee-id ID | -name NAME -udise CODE [-state true|false] - set or toggle a student's verification", roles: admins, run: cli.verify},
		{name: "file-url", usage: "file-url FILENAME - URL of an uploaded file", run: cli.fileURL},
		{name: "download", usage: "download -o PATH FILENAME - save an uploaded file", roles: anyone, run: cli.download},
		{name: "lang", usage: "lang [en|hi] - show or set the language", run: cli.lang},
		{name: "export", usage: "export -o FILE.xlsx [-only schools,students,teachers] - export lists to a workbook", roles: admins, run: cli.export},
		{name: "supervisor", usage: "supervisor dashboard|schools|students|teachers [-q QUERY] - supervisor views", roles: []session.Role{session.RoleSupervisor}, run: cli.supervisor},
	}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	for _, cmd := range cli.commands() {
		fmt.Fprintf(cli.out, "  %s\n", cmd.usage)
	}
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	name := core.CleanString(args[1], true /* lower */)
	for _, cmd := range cli.commands() {
		if cmd.name != name {
			continue
		}
		if err := cli.authorize(cmd.roles); err != nil {
			return err
		}
		return cmd.run(ctx, args[2:])
	}

	if suggestion := cli.suggest(name); suggestion != "" {
		fmt.Fprintf(cli.out, "unknown command %q, did you mean %q?\n", name, suggestion)
	}
	cli.printUsage()
	return errHelp
}

func (cli *commandLine) authorize(roles []session.Role) error {
	if roles == nil {
		return nil
	}
	sess := cli.sessions.Current()
	if !sess.IsAuthenticated() {
		return errNotLoggedIn
	}
	for _, r := range roles {
		if sess.Role == r {
			return nil
		}
	}
	return errForbidden
}

// suggest returns the command closest to name, or "" when none is close enough.
func (cli *commandLine) suggest(name string) string {
	if name == "" {
		return ""
	}
	type candidate struct {
		name  string
		ratio float64
	}
	var candidates []candidate
	for _, cmd := range cli.commands() {
		m := difflib.NewMatcher(strings.Split(name, ""), strings.Split(cmd.name, ""))
		if m.QuickRatio() < suggestionRatio {
			continue
		}
		if r := m.Ratio(); r >= suggestionRatio {
			candidates = append(candidates, candidate{cmd.name, r})
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].ratio > candidates[j].ratio })
	return candidates[0].name
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

// parse maps -h and flag errors to errHelp, after usage was printed.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errHelp
	}
	return nil
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func (cli *commandLine) table(header ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	return w
}

func (cli *commandLine) printCount(shown, total int) {
	if shown == 0 {
		fmt.Fprintln(cli.out, cli.loc.T("noRecords"))
		return
	}
	fmt.Fprintf(cli.out, "%s %s %s %s\n", cli.loc.T("showingRecords"), cli.loc.FmtCount(shown), cli.loc.T("of"), cli.loc.FmtCount(total))
}
