package datasets

type DataSet struct {
	Identifier string
	Format     DataSetFormat

	Provider Provider

	Source string

	RefreshIntervalSeconds int
}

type DataSetFormat string

const (
	DataSetFormatTimetableCSV DataSetFormat = "timetable-csv"
	DataSetFormatFaresCSV     DataSetFormat = "fares-csv"
)

type Provider struct {
	Name    string
	Website string
}
