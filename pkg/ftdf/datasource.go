package ftdf

type DataSourceReference struct {
	OriginalFormat string `groups:"internal"` // eg. timetable-csv, statusfeed-json
	Provider       string `groups:"internal"`
	DatasetID      string `groups:"internal"`
	Timestamp      string `groups:"internal"`
}
