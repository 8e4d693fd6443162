package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSubmitAttendanceRequest_Normalize_AbsentZeroesHours(t *testing.T) {
	req := SubmitAttendanceRequest{
		Date: "2026-08-01",
		Entries: []Entry{
			{WorkerID: "w1", Present: false, HoursWorked: decimal.NewFromInt(8), Overtime: decimal.NewFromInt(2)},
			{WorkerID: "w2", Present: true, HoursWorked: decimal.NewFromInt(8), Overtime: decimal.NewFromInt(1)},
		},
	}

	req.Normalize()

	assert.True(t, req.Entries[0].HoursWorked.IsZero())
	assert.True(t, req.Entries[0].Overtime.IsZero())

	// Present entries are untouched
	assert.True(t, req.Entries[1].HoursWorked.Equal(decimal.NewFromInt(8)))
	assert.True(t, req.Entries[1].Overtime.Equal(decimal.NewFromInt(1)))
}

func TestSubmitAttendanceRequest_Validate_EmptyBatch(t *testing.T) {
	req := SubmitAttendanceRequest{Date: "2026-08-01"}

	err := req.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "attendance")
}

func TestSubmitAttendanceRequest_Validate_BadDate(t *testing.T) {
	req := SubmitAttendanceRequest{
		Date:    "01-08-2026",
		Entries: []Entry{{WorkerID: "w1", Present: true, HoursWorked: decimal.NewFromInt(8)}},
	}

	err := req.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestSubmitAttendanceRequest_Validate_HoursOutOfRange(t *testing.T) {
	req := SubmitAttendanceRequest{
		Date: "2026-08-01",
		Entries: []Entry{
			{WorkerID: "w1", Present: true, HoursWorked: decimal.NewFromInt(25)},
			{WorkerID: "w2", Present: true, HoursWorked: decimal.NewFromInt(8), Overtime: decimal.NewFromInt(-1)},
		},
	}

	err := req.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "attendance[0].hours_worked")
	assert.Contains(t, err.Error(), "attendance[1].overtime")
}

func TestSubmitAttendanceRequest_Validate_MissingWorkerID(t *testing.T) {
	req := SubmitAttendanceRequest{
		Date:    "2026-08-01",
		Entries: []Entry{{Present: true, HoursWorked: decimal.NewFromInt(8)}},
	}

	err := req.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "attendance[0].worker_id")
}

func TestListFilter_Validate(t *testing.T) {
	bad := "2026/01/01"
	f := ListFilter{StartDate: &bad, SortOrder: "upward", Limit: 500}
	err := f.Validate()
	assert.Error(t, err)

	ok := "2026-01-01"
	f = ListFilter{StartDate: &ok, SortOrder: "asc", Page: 2, Limit: 50}
	assert.NoError(t, f.Validate())
}
