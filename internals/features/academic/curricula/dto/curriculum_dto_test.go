package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDistribution(t *testing.T) {
	p := ParseDistribution(
		[]string{"4", "x", " 7 ", "9"},
		[]string{"1", "2", "3"},
		[]string{"36", "", "48", "10"},
	)
	require.Len(t, p.Items, 3)
	assert.Equal(t, DistributionItem{Subject: 4, Semester: 1, Hours: 36}, p.Items[0])
	assert.Equal(t, DistributionItem{Subject: 7, Semester: 3, Hours: 48}, p.Items[1])
	// semester column shorter than subjects: left at zero for validation to catch
	assert.Equal(t, DistributionItem{Subject: 9, Semester: 0, Hours: 10}, p.Items[2])
}

func TestDistributionValidation(t *testing.T) {
	v := validator.New()
	assert.Error(t, v.Struct(DistributionPayload{}))
	assert.Error(t, v.Struct(ParseDistribution([]string{"1"}, []string{"0"}, nil)))
	assert.NoError(t, v.Struct(ParseDistribution([]string{"1"}, []string{"2"}, []string{"30"})))
}

func TestOutOfRange(t *testing.T) {
	p := DistributionPayload{Items: []DistributionItem{
		{Subject: 1, Semester: 2},
		{Subject: 2, Semester: 9},
		{Subject: 3, Semester: 8},
	}}
	assert.Equal(t, []int{2}, p.OutOfRange(8))
	assert.Nil(t, p.OutOfRange(0))
}

func TestSemesters(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Semesters(3))
	assert.Empty(t, Semesters(0))
}
