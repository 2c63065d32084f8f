// Package exportsvc writes record lists to xlsx workbooks.
package exportsvc

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/pathshala/admin/core/school"
	"github.com/pathshala/admin/core/student"
	"github.com/pathshala/admin/core/teacher"
)

// Translator localizes column headers and sheet names.
type Translator interface {
	T(key string) string
}

type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// Write renders sheets, in order, as one workbook into w.
func Write(w io.Writer, sheets ...Sheet) (err error) {
	if len(sheets) == 0 {
		return errors.New("nothing to export")
	}

	f := excelize.NewFile()
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = errors.Wrap(cErr, "closing workbook")
		}
	}()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "creating header style")
	}

	for i, sh := range sheets {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), sh.Name)
		} else {
			_, err = f.NewSheet(sh.Name)
		}
		if err != nil {
			return errors.Wrapf(err, "creating sheet %q", sh.Name)
		}
		if err := writeSheet(f, sh, bold); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	return errors.Wrap(f.Write(w), "writing workbook")
}

func writeSheet(f *excelize.File, sh Sheet, headerStyle int) error {
	header := make([]interface{}, 0, len(sh.Header))
	for _, h := range sh.Header {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sh.Name, "A1", &header); err != nil {
		return errors.Wrapf(err, "writing %s header", sh.Name)
	}
	if err := f.SetRowStyle(sh.Name, 1, 1, headerStyle); err != nil {
		return errors.Wrapf(err, "styling %s header", sh.Name)
	}

	for i, row := range sh.Rows {
		row := row
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "computing cell name")
		}
		if err := f.SetSheetRow(sh.Name, cell, &row); err != nil {
			return errors.Wrapf(err, "writing %s row %d", sh.Name, i+2)
		}
	}
	return nil
}

func translate(tr Translator, keys ...string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, tr.T(k))
	}
	return out
}

func SchoolsSheet(tr Translator, schools []school.School) Sheet {
	sh := Sheet{
		Name:   tr.T("schools"),
		Header: append([]string{"S.No"}, translate(tr, "udiseCode", "schoolName", "district", "block", "cluster")...),
	}
	for _, s := range schools {
		sh.Rows = append(sh.Rows, []interface{}{
			s.Sno.Int(), s.UdiseCode, s.SchoolName, s.DistrictName, s.BlockName, s.ClusterName,
		})
	}
	return sh
}

func StudentsSheet(tr Translator, students []student.Student) Sheet {
	sh := Sheet{
		Name:   tr.T("students"),
		Header: translate(tr, "studentName", "schoolName", "udiseCode", "class", "treeName", "verified", "reuploadCount", "lastReuploadDate"),
	}
	for _, s := range students {
		verified := tr.T("notVerified")
		if s.IsVerified() {
			verified = tr.T("verified")
		}
		sh.Rows = append(sh.Rows, []interface{}{
			s.Name, s.SchoolName, s.UdiseCode, s.Class, s.NameOfTree, verified, s.ReuploadCount.Int(), s.LastReuploadDate,
		})
	}
	return sh
}

func TeachersSheet(tr Translator, teachers []teacher.Teacher) Sheet {
	sh := Sheet{
		Name:   tr.T("teachers"),
		Header: translate(tr, "teacherName", "mobile", "username", "schoolName", "udiseCode", "studentCount"),
	}
	for _, t := range teachers {
		sh.Rows = append(sh.Rows, []interface{}{
			t.Name, t.Mobile, t.Username, t.SchoolName, t.UdiseCode, t.StudentCount.Int(),
		})
	}
	return sh
}
