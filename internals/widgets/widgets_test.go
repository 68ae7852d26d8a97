package widgets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassHourFormScenario(t *testing.T) {
	form := NewClassHourForm([]ClassHour{{PairNumber: 1, BeginTime: "08:00:00", EndTime: "08:45:00"}})

	require.Len(t, form.Rows, 1)
	assert.Equal(t, "2 para", form.Rows[0].Display("para"))
	assert.Equal(t, "08:00", form.Rows[0].Start)
	assert.Equal(t, "08:45", form.Rows[0].End)

	form.Append()
	form.Rows[1].Start = "08:55"
	form.Rows[1].End = "09:40"
	assert.Equal(t, 3, form.Rows[1].Label)

	var saved []ClassHourPayload
	err := form.Submit(func(p []ClassHourPayload) error {
		saved = p
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []ClassHourPayload{
		{Para: 0, StartTime: "08:00", EndTime: "08:45"},
		{Para: 1, StartTime: "08:55", EndTime: "09:40"},
	}, saved)
}

func TestClassHourFormBlocksIncompleteRows(t *testing.T) {
	cases := map[string][2]string{
		"missing start": {"", "09:40"},
		"missing end":   {"08:55", ""},
		"both missing":  {"", ""},
		"bad format":    {"8.55", "09:40"},
	}
	for name, times := range cases {
		t.Run(name, func(t *testing.T) {
			form := NewClassHourForm([]ClassHour{{PairNumber: 0, BeginTime: "08:00", EndTime: "08:45"}})
			form.Append()
			form.Rows[1].Start, form.Rows[1].End = times[0], times[1]

			called := false
			err := form.Submit(func([]ClassHourPayload) error {
				called = true
				return nil
			})
			require.Error(t, err)
			assert.False(t, called, "save must not run on invalid input")

			var rowErrs RowErrors
			require.ErrorAs(t, err, &rowErrs)
			for _, re := range rowErrs {
				assert.Equal(t, 1, re.Row)
			}
		})
	}
}

func TestClassHourFormEmpty(t *testing.T) {
	form := NewClassHourForm(nil)
	err := form.Submit(func([]ClassHourPayload) error { return nil })
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestClassHourSubmitPropagatesSaveError(t *testing.T) {
	form := NewClassHourForm([]ClassHour{{PairNumber: 0, BeginTime: "08:00", EndTime: "08:45"}})
	boom := errors.New("backend said no")
	assert.ErrorIs(t, form.Submit(func([]ClassHourPayload) error { return boom }), boom)
}

func TestParseClassHourForm(t *testing.T) {
	form := ParseClassHourForm(
		[]string{"1", "2", ""},
		[]string{"08:00:00", "08:55", "10:00"},
		[]string{"08:45", "09:40", "10:45"},
	)
	require.Len(t, form.Rows, 3)
	assert.Equal(t, ClassHourRow{Label: 1, Start: "08:00", End: "08:45"}, form.Rows[0])
	assert.Equal(t, 3, form.Rows[2].Label)

	short := ParseClassHourForm(nil, []string{"08:00"}, nil)
	require.Len(t, short.Rows, 1)
	assert.Equal(t, "", short.Rows[0].End)
	assert.Error(t, short.Validate())
}

func TestRowErrorsHas(t *testing.T) {
	errs := RowErrors{{Row: 2, Field: "End", Tag: "required"}}
	assert.True(t, errs.Has(2, "End"))
	assert.False(t, errs.Has(2, "Start"))
	assert.Equal(t, "row 3: end required", errs.Error())
}

func TestFilterOptions(t *testing.T) {
	opts := []Option{{1, "Bosh bino"}, {2, "Sport zali"}, {3, "Laboratoriya binosi"}}

	assert.Equal(t, []Option{{1, "Bosh bino"}, {3, "Laboratoriya binosi"}}, FilterOptions(opts, "BINO"))
	assert.Equal(t, opts, FilterOptions(opts, ""))
	assert.Empty(t, FilterOptions(opts, "xyz"))
}

func TestSearchSelect(t *testing.T) {
	s := NewSearchSelect("Bino", "building", "buildings", []Option{{4, "Bosh bino"}, {7, "Sport zali"}}, 7)

	o, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Sport zali", o.Name)
	assert.Equal(t, "Sport zali", s.SelectedName())

	s.Query = "bosh"
	assert.Equal(t, []Option{{4, "Bosh bino"}}, s.Matches())

	picked, ok := s.Pick("4")
	assert.True(t, ok)
	assert.Equal(t, 4, picked.ID)

	picked, ok = s.Pick("sport ZALI")
	assert.True(t, ok)
	assert.Equal(t, 7, picked.ID)

	_, ok = s.Pick("99")
	assert.False(t, ok)
	_, ok = s.Pick("")
	assert.False(t, ok)

	s.Value = 0
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestShortTime(t *testing.T) {
	assert.Equal(t, "08:00", ShortTime("08:00:00"))
	assert.Equal(t, "08:00", ShortTime(" 08:00 "))
	assert.Equal(t, "", ShortTime(""))
	assert.Equal(t, "8:00", ShortTime("8:00"))
}
