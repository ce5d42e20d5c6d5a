package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const rosterSheet = "Students"

var rosterHeader = []interface{}{"Roll Number", "First Name", "Last Name", "Courses"}

// ExportRoster writes every student as a row of an xlsx workbook.
func (s *studentService) ExportRoster(w io.Writer) (err error) {
	students, err := s.ListStudents()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing roster workbook: %w", cerr)
		}
	}()

	// NewFile starts with a single "Sheet1"
	if err := f.SetSheetName(f.GetSheetName(0), rosterSheet); err != nil {
		return fmt.Errorf("naming roster sheet: %w", err)
	}
	if err := f.SetSheetRow(rosterSheet, "A1", &rosterHeader); err != nil {
		return fmt.Errorf("writing roster header: %w", err)
	}

	for i, student := range students {
		codes := make([]string, 0, len(student.Enrollments))
		for _, c := range student.Courses() {
			codes = append(codes, c.Code)
		}
		row := []interface{}{student.RollNumber, student.FirstName, student.LastName, strings.Join(codes, ", ")}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(rosterSheet, cell, &row); err != nil {
			return fmt.Errorf("writing roster row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing roster workbook: %w", err)
	}
	return nil
}
