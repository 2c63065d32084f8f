package main

import (
	"context"
	"fmt"

	"github.com/pathshala/admin/core/dashboard"
	"github.com/pathshala/admin/core/student"
	"github.com/pathshala/admin/core/supervisor"
	"github.com/pathshala/admin/services/backend"
)

func (cli *commandLine) stats(ctx context.Context, _ []string) error {
	stats, err := cli.client.DashboardStats(ctx)

	var board dashboard.Board
	board.Apply(stats, err, backendsvc.Message)

	w := cli.table(cli.loc.T("dashboard"), "")
	fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("totalStudents"), cli.loc.FmtCount(board.Students))
	fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("totalSchools"), cli.loc.FmtCount(board.Schools))
	fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("totalBlocks"), cli.loc.FmtCount(board.Blocks))
	fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("totalClusters"), cli.loc.FmtCount(board.Clusters))
	if err := w.Flush(); err != nil {
		return err
	}

	if board.Failed() {
		return err
	}
	return nil
}

func (cli *commandLine) reuploads(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("reuploads")
	local := fs.Bool("local", false, "count from the student list instead of the server counters")
	if err := parse(fs, args); err != nil {
		return err
	}

	var counts student.ReuploadCounts
	if *local {
		students, err := cli.client.Students(ctx)
		if err != nil {
			return err
		}
		counts = student.CountReuploads(students, student.NowFunc())
	} else {
		stats, err := cli.client.ReuploadStats(ctx)
		if err != nil {
			return err
		}
		counts = student.ReuploadCounts{
			Never:   stats.NeverReuploaded.Int(),
			Pending: stats.PendingReupload.Int(),
			Due:     stats.ReuploadDue.Int(),
		}
	}

	w := cli.table(cli.loc.T("students"), "")
	fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("neverReuploaded"), cli.loc.FmtCount(counts.Never))
	fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("pendingReupload"), cli.loc.FmtCount(counts.Pending))
	fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("reuploadDue"), cli.loc.FmtCount(counts.Due))
	return w.Flush()
}

func (cli *commandLine) supervisor(ctx context.Context, args []string) error {
	view := "dashboard"
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		view, args = args[0], args[1:]
	}
	fs := cli.newFlagSet("supervisor " + view)
	query := fs.String("q", "", "search query")
	if err := parse(fs, args); err != nil {
		return err
	}

	switch view {
	case "dashboard":
		stats, err := cli.client.SupervisorDashboard(ctx)
		if err != nil {
			return err
		}
		w := cli.table(cli.loc.T("dashboard"), "")
		fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("assignedSchools"), cli.loc.FmtCount(stats.AssignedSchools.Int()))
		fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("assignedStudents"), cli.loc.FmtCount(stats.AssignedStudents.Int()))
		fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("assignedTeachers"), cli.loc.FmtCount(stats.AssignedTeachers.Int()))
		fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("totalRecords"), cli.loc.FmtCount(stats.TotalRecords()))
		return w.Flush()

	case "schools":
		schools, err := cli.client.SupervisorSchools(ctx)
		if err != nil {
			return err
		}
		shown := supervisor.SearchSchools(schools, *query)
		w := cli.table("ID", cli.loc.T("schoolName"), cli.loc.T("address"), cli.loc.T("udiseCode"))
		for _, s := range shown {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.SchoolName, s.Address, s.Udise)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		cli.printCount(len(shown), len(schools))
		return nil

	case "students":
		students, err := cli.client.SupervisorStudents(ctx)
		if err != nil {
			return err
		}
		shown := supervisor.SearchStudents(students, *query)
		w := cli.table("ID", cli.loc.T("studentName"), cli.loc.T("schoolName"), cli.loc.T("grade"), cli.loc.T("age"), cli.loc.T("guardianName"))
		for _, s := range shown {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.School, s.Grade, s.Age, s.GuardianName)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		cli.printCount(len(shown), len(students))
		return nil

	case "teachers":
		teachers, err := cli.client.SupervisorTeachers(ctx)
		if err != nil {
			return err
		}
		shown := supervisor.SearchTeachers(teachers, *query)
		return cli.printTeachers(shown, len(teachers))
	}

	fmt.Fprintf(cli.out, "unknown supervisor view %q\n", view)
	cli.printUsage()
	return errHelp
}
