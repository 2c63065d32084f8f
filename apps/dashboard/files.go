package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gbytes "github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/pathshala/admin/core"
	"github.com/pathshala/admin/core/school"
	"github.com/pathshala/admin/core/student"
	"github.com/pathshala/admin/core/teacher"
	"github.com/pathshala/admin/services/export"
)

var (
	writeFileFunc = os.WriteFile // mockable

	exportables = []string{"schools", "students", "teachers"}
)

func (cli *commandLine) fileURL(_ context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(cli.out, "Usage: file-url FILENAME")
		return errHelp
	}
	url := cli.client.FileURL(args[0])
	if url == "" {
		return errors.Errorf("no file name in %q", args[0])
	}
	fmt.Fprintln(cli.out, url)
	return nil
}

func (cli *commandLine) download(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("download")
	out := fs.String("o", "", "output path (default: the file name in the current directory)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errHelp
	}

	file, err := cli.client.DownloadFile(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = file.Name
	}
	if err := writeFileFunc(path, file.Content, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	cli.logger.Info("file downloaded", map[string]interface{}{"file": file.Name, "path": path})
	fmt.Fprintf(cli.out, "%s (%s, %s)\n", path, file.ContentType, gbytes.Format(int64(len(file.Content))))
	return nil
}

func (cli *commandLine) export(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("export")
	out := fs.String("o", "pathshala.xlsx", "output workbook")
	only := fs.String("only", strings.Join(exportables, ","), "comma separated sheets to export")
	if err := parse(fs, args); err != nil {
		return err
	}
	if filepath.Ext(*out) != ".xlsx" {
		return core.NewValidationError(nil, core.FieldError{Field: "o", Error: "output must be a .xlsx file"})
	}

	want := make(map[string]bool)
	for _, name := range strings.Split(*only, ",") {
		name = core.CleanString(name, true /* lower */)
		if name == "" {
			continue
		}
		if !contains(exportables, name) {
			return core.NewValidationError(nil, core.FieldError{Field: "only", Error: "unknown sheet " + name})
		}
		want[name] = true
	}

	var (
		schools  []school.School
		students []student.Student
		teachers []teacher.Teacher
	)
	g, gctx := errgroup.WithContext(ctx)
	if want["schools"] {
		g.Go(func() (err error) {
			schools, err = cli.client.Schools(gctx)
			return err
		})
	}
	if want["students"] {
		g.Go(func() (err error) {
			students, err = cli.client.Students(gctx)
			return err
		})
	}
	if want["teachers"] {
		g.Go(func() (err error) {
			teachers, err = cli.client.Teachers(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var sheets []exportsvc.Sheet
	if want["schools"] {
		sheets = append(sheets, exportsvc.SchoolsSheet(cli.loc, schools))
	}
	if want["students"] {
		sheets = append(sheets, exportsvc.StudentsSheet(cli.loc, students))
	}
	if want["teachers"] {
		sheets = append(sheets, exportsvc.TeachersSheet(cli.loc, teachers))
	}

	var buf bytes.Buffer
	if err := exportsvc.Write(&buf, sheets...); err != nil {
		return err
	}
	if err := writeFileFunc(*out, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", *out)
	}
	fmt.Fprintf(cli.out, "%s: %s\n", cli.loc.T("exportSaved"), *out)
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
