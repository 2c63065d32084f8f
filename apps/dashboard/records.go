package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/pathshala/admin/core/school"
	"github.com/pathshala/admin/core/student"
	"github.com/pathshala/admin/core/teacher"
	"github.com/pathshala/admin/services/backend"
)

func (cli *commandLine) schools(ctx context.Context, args []string) error {
	var filter school.QueryFilter
	fs := cli.newFlagSet("schools")
	fs.StringVar(&filter.Search, "q", "", "search school, district, UDISE code, block or cluster")
	fs.StringVar(&filter.DistrictCode, "district-code", "", "district code contains")
	fs.StringVar(&filter.DistrictName, "district", "", "district name contains")
	fs.StringVar(&filter.BlockCode, "block-code", "", "block code contains")
	fs.StringVar(&filter.BlockName, "block", "", "block name contains")
	fs.StringVar(&filter.ClusterCode, "cluster-code", "", "cluster code contains")
	fs.StringVar(&filter.ClusterName, "cluster", "", "cluster name contains")
	fs.StringVar(&filter.UdiseCode, "udise", "", "UDISE code contains")
	summary := fs.Bool("summary", false, "print block, cluster and student totals of the filtered schools")
	if err := parse(fs, args); err != nil {
		return err
	}

	var (
		schools  []school.School
		students []student.Student
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		schools, err = cli.client.Schools(gctx)
		return err
	})
	if *summary {
		g.Go(func() (err error) {
			students, err = cli.client.Students(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	shown := schools
	if filter.Clean(); !filter.IsEmpty() {
		shown = school.Filter(schools, filter)
	}
	w := cli.table(
		"#", cli.loc.T("schoolName"), cli.loc.T("udiseCode"), cli.loc.T("district"), cli.loc.T("block"), cli.loc.T("cluster"),
	)
	for _, s := range shown {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", s.Sno, s.SchoolName, s.UdiseCode, s.DistrictName, s.BlockName, s.ClusterName)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	cli.printCount(len(shown), len(schools))

	if *summary {
		sum := school.Summarize(shown, student.UdiseCodes(students))
		w := cli.table(cli.loc.T("dashboard"), "")
		fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("totalSchools"), cli.loc.FmtCount(sum.Schools))
		fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("totalBlocks"), cli.loc.FmtCount(sum.Blocks))
		fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("totalClusters"), cli.loc.FmtCount(sum.Clusters))
		fmt.Fprintf(w, "%s\t%s\n", cli.loc.T("totalStudents"), cli.loc.FmtCount(sum.Students))
		return w.Flush()
	}
	return nil
}

func (cli *commandLine) students(ctx context.Context, args []string) error {
	var filter student.QueryFilter
	fs := cli.newFlagSet("students")
	udise := fs.String("udise", "", "fetch the students of one school only")
	fs.StringVar(&filter.Search, "q", "", "search name, school, class, UDISE code or tree")
	fs.StringVar(&filter.Class, "class", "", "exact class")
	fs.StringVar(&filter.UdiseCode, "filter-udise", "", "UDISE code contains")
	if err := parse(fs, args); err != nil {
		return err
	}

	var (
		students []student.Student
		err      error
	)
	if *udise != "" {
		students, err = cli.client.StudentsByUdise(ctx, *udise)
	} else {
		students, err = cli.client.Students(ctx)
	}
	if err != nil {
		return err
	}

	shown := students
	if filter.Clean(); !filter.IsEmpty() {
		shown = student.Filter(students, filter)
	}
	w := cli.table(
		cli.loc.T("studentName"), cli.loc.T("class"), cli.loc.T("schoolName"), cli.loc.T("udiseCode"),
		cli.loc.T("treeName"), cli.loc.T("verified"), cli.loc.T("reuploadCount"),
	)
	for _, s := range shown {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Name, s.Class, s.SchoolName, s.UdiseCode, s.NameOfTree, cli.verifiedLabel(s), s.ReuploadCount)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	cli.printCount(len(shown), len(students))
	if len(shown) == 0 && filter.Class != "" {
		fmt.Fprintf(cli.out, "%s: %s\n", cli.loc.T("class"), strings.Join(student.Classes(students), ", "))
	}
	return nil
}

func (cli *commandLine) verifiedLabel(s student.Student) string {
	if s.IsVerified() {
		return cli.loc.T("verified")
	}
	return cli.loc.T("notVerified")
}

func (cli *commandLine) count(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("count")
	udise := fs.String("udise", "", "UDISE code of the school")
	if err := parse(fs, args); err != nil {
		return err
	}

	res, err := cli.client.TeacherDashboard(ctx, *udise)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s\n%s: %s\n", res.SchoolName, cli.loc.T("totalStudents"), cli.loc.FmtCount(res.Count.Int()))
	return nil
}

func (cli *commandLine) teachers(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("teachers")
	query := fs.String("q", "", "search name, school, mobile or username")
	if err := parse(fs, args); err != nil {
		return err
	}

	teachers, err := cli.client.Teachers(ctx)
	if err != nil {
		return err
	}
	return cli.printTeachers(teacher.Search(teachers, *query), len(teachers))
}

func (cli *commandLine) printTeachers(shown []teacher.Teacher, total int) error {
	w := cli.table(
		cli.loc.T("teacherName"), cli.loc.T("mobile"), cli.loc.T("username"), cli.loc.T("schoolName"), cli.loc.T("studentCount"),
	)
	for _, t := range shown {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.Name, t.Mobile, t.Username, t.SchoolName, t.StudentCount)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	cli.printCount(len(shown), total)
	if len(shown) > 0 {
		fmt.Fprintf(cli.out, "%s: %s\n", cli.loc.T("totalStudents"), cli.loc.FmtCount(teacher.TotalStudents(shown)))
	}
	return nil
}

// verify sets the verification of one student, or toggles it when -state is omitted.
func (cli *commandLine) verify(ctx context.Context, args []string) error {
	var target student.Student
	fs := cli.newFlagSet("verify")
	fs.StringVar(&target.EmployeeID, "employee-id", "", "employee id of the student")
	fs.StringVar(&target.Name, "name", "", "name of the student (when it has no employee id)")
	fs.StringVar(&target.UdiseCode, "udise", "", "UDISE code of the student's school")
	state := fs.String("state", "", "true | false (default: toggle)")
	if err := parse(fs, args); err != nil {
		return err
	}

	vu := backendsvc.NewVerificationUpdate(target, *state)
	vu.Clean()

	students, err := cli.client.Students(ctx)
	if err != nil {
		return err
	}
	current, found := findStudent(students, vu.Target())
	if vu.Verified == "" {
		if !found {
			return errors.New("No student found with the provided information.")
		}
		vu.Verified = student.ToggleVerified(current.Verified)
	}

	if err := cli.client.UpdateStudentVerification(ctx, vu); err != nil {
		return err
	}
	students = student.ApplyVerification(students, vu.Target(), vu.Verified)
	if updated, ok := findStudent(students, vu.Target()); ok {
		current = updated
	} else {
		current = vu.Target()
		current.Verified = vu.Verified
	}

	name := strings.TrimSpace(current.Name + " " + current.EmployeeID)
	fmt.Fprintf(cli.out, "%s: %s (%s)\n", cli.loc.T("verificationSaved"), name, cli.verifiedLabel(current))
	return nil
}

func findStudent(students []student.Student, target student.Student) (student.Student, bool) {
	for _, s := range students {
		if s.SameAs(target) {
			return s, true
		}
	}
	return student.Student{}, false
}
