package models

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm/schema"
)

func TestCourseResponse_NullsAndDates(t *testing.T) {
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	price := 199.5
	course := Course{CourseID: 7, Title: "Distributed Systems", StartDate: &start, Price: &price}

	raw, err := json.Marshal(course.Response())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"course_id":7,"title":"Distributed Systems","description":null,"instructor":null,"start_date":"2024-09-01","end_date":null,"price":199.5}`
	if string(raw) != want {
		t.Fatalf("unexpected JSON\nwant %s\ngot  %s", want, raw)
	}
}

func TestStudentResponse_RegistrationDate(t *testing.T) {
	reg := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	student := Student{StudentID: 1, FirstName: "Ana", LastName: "Lee", Email: "ana@x.com", RegistrationDate: &reg}

	raw, err := json.Marshal(student.Response())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"student_id":1,"first_name":"Ana","last_name":"Lee","email":"ana@x.com","registration_date":"2024-01-01T00:00:00"}`
	if string(raw) != want {
		t.Fatalf("unexpected JSON\nwant %s\ngot  %s", want, raw)
	}
}

func TestEnrollmentResponse(t *testing.T) {
	at := time.Date(2024, 2, 10, 8, 15, 0, 250000000, time.UTC)
	e := Enrollment{EnrollmentID: 3, StudentID: 1, CourseID: 2, Status: DefaultEnrollmentStatus, EnrollmentDate: &at}

	got := e.Response()
	if got.Status != "enrolled" {
		t.Fatalf("expected enrolled, got %q", got.Status)
	}
	if got.EnrollmentDate == nil || *got.EnrollmentDate != "2024-02-10T08:15:00.250000" {
		t.Fatalf("unexpected enrollment date %v", got.EnrollmentDate)
	}
}

func TestSchema_KeysAndDefaults(t *testing.T) {
	cases := []struct {
		model     any
		table     string
		key       string
		dbDefault []string
	}{
		{&Course{}, "courses", "course_id", []string{"course_id"}},
		{&Student{}, "students", "student_id", []string{"registration_date", "student_id"}},
		{&Enrollment{}, "enrollments", "enrollment_id", []string{"enrollment_date", "enrollment_id"}},
	}
	for _, tc := range cases {
		s, err := schema.Parse(tc.model, &sync.Map{}, schema.NamingStrategy{})
		if err != nil {
			t.Fatalf("parse %T: %v", tc.model, err)
		}
		if s.Table != tc.table {
			t.Errorf("%T: expected table %s, got %s", tc.model, tc.table, s.Table)
		}
		if s.PrioritizedPrimaryField == nil || s.PrioritizedPrimaryField.DBName != tc.key {
			t.Errorf("%T: expected primary key %s", tc.model, tc.key)
		}
		var got []string
		for _, f := range s.FieldsWithDefaultDBValue {
			got = append(got, f.DBName)
		}
		if len(got) != len(tc.dbDefault) {
			t.Fatalf("%T: expected database defaults %v, got %v", tc.model, tc.dbDefault, got)
		}
		for i := range got {
			if got[i] != tc.dbDefault[i] {
				t.Errorf("%T: expected database defaults %v, got %v", tc.model, tc.dbDefault, got)
			}
		}
	}
}

func TestEnrollmentSchema_StatusDefault(t *testing.T) {
	s, err := schema.Parse(&Enrollment{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := s.LookUpField("status").DefaultValueInterface; got != DefaultEnrollmentStatus {
		t.Fatalf("expected status default %q, got %v", DefaultEnrollmentStatus, got)
	}
}
