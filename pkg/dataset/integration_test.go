package dataset

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ajitpratap0/tabula/pkg/errors"
	"github.com/ajitpratap0/tabula/pkg/table"
	"github.com/ajitpratap0/tabula/pkg/testutil"
)

type LoadSuite struct {
	testutil.FixtureSuite
}

func TestLoadSuite(t *testing.T) {
	testutil.IntegrationTest(t)
	suite.Run(t, new(LoadSuite))
}

func (s *LoadSuite) open(name string) *Dataset {
	opts := DefaultOptions()
	opts.Logger = s.Logger()
	ds, err := NewWithOptions(s.TempDir(), name, opts)
	s.Require().NoError(err)
	return ds
}

func (s *LoadSuite) TestGeneratedRows() {
	testutil.WriteCSV(s.T(), s.TempDir(), "records.csv",
		[]string{"id", "label", "value"}, testutil.GenerateRows(1000))

	ds := s.open("records.csv")
	s.Equal(1000, ds.Extract().NumRows())
	s.Equal([]string{"label"}, ds.CategoricalColumns())
	s.Equal([]string{"id", "value"}, ds.NumericColumns())

	id, _ := ds.Extract().Column("id")
	s.Equal(table.KindInt, id.Kind())

	value, ok := ds.Describe().Summary("value")
	s.Require().True(ok)
	s.Equal(900, value.Count)
	s.Equal(0.0, value.Min)

	idStats, _ := ds.Describe().Summary("id")
	s.Equal(1000, idStats.Count)
	s.Equal(499.5, idStats.Mean)
	s.Equal(499.5, idStats.Median)
	s.Equal(249.75, idStats.Q1)
	s.Equal(749.25, idStats.Q3)
}

func (s *LoadSuite) TestQuotedFields() {
	s.CreateTempFile("incidents.csv",
		"INCIDENT_NUMBER,OFFENSE_DESCRIPTION,Lat,Long\n"+
			"I182070945,\"LARCENY, ALL OTHERS\",42.35779134,-71.13937053\n"+
			"I182070943,\"VANDALISM\",,\n"+
			"I182070941,\"ROBBERY - STREET\",42.30967,-71.06593\n")

	ds := s.open("incidents.csv")
	s.Equal([]string{"INCIDENT_NUMBER", "OFFENSE_DESCRIPTION"}, ds.CategoricalColumns())
	s.Equal([]string{"Lat", "Long"}, ds.NumericColumns())

	desc, _ := ds.Extract().Column("OFFENSE_DESCRIPTION")
	s.Equal("LARCENY, ALL OTHERS", desc.String(0))

	lat, _ := ds.Describe().Summary("Lat")
	s.Equal(2, lat.Count)
}

func (s *LoadSuite) TestSubdirectoryFile() {
	s.CreateTempFile("scores.csv", testutil.ScoresCSV)

	_, err := New(s.Path("missing"), "scores.csv")
	s.True(errors.IsType(err, errors.ErrorTypeInvalidDirectory))

	ds, err := New(s.TempDir(), "scores.csv")
	s.Require().NoError(err)
	s.Equal(s.Path("scores.csv"), ds.Path())
}
