package manager

import "github.com/okiferry/okiferry/pkg/dataimporter/datasets"

func GetRegisteredDataSets() []datasets.DataSet {
	return []datasets.DataSet{
		{
			Identifier: "jp-okikisen-timetable",
			Format:     datasets.DataSetFormatTimetableCSV,
			Provider: datasets.Provider{
				Name:    "Oki Kisen",
				Website: "https://www.oki-kisen.co.jp",
			},
			Source: "data/timetable.csv",
		},
		{
			Identifier: "jp-okikisen-fares",
			Format:     datasets.DataSetFormatFaresCSV,
			Provider: datasets.Provider{
				Name:    "Oki Kisen",
				Website: "https://www.oki-kisen.co.jp",
			},
			Source: "data/fares.csv",
		},
	}
}
