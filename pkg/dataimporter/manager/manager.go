package manager

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/okiferry/okiferry/pkg/dataimporter/datasets"
	"github.com/okiferry/okiferry/pkg/dataimporter/formats"
	"github.com/okiferry/okiferry/pkg/dataimporter/formats/farescsv"
	"github.com/okiferry/okiferry/pkg/dataimporter/formats/timetablecsv"
	"github.com/okiferry/okiferry/pkg/ftdf"
	"github.com/rs/zerolog/log"
)

func GetDataset(identifier string) (datasets.DataSet, error) {
	for _, dataset := range GetRegisteredDataSets() {
		if dataset.Identifier == identifier {
			return dataset, nil
		}
	}

	return datasets.DataSet{}, errors.New("dataset could not be found")
}

func ImportDataset(dataset *datasets.DataSet) error {
	log.Info().Str("id", dataset.Identifier).Str("format", string(dataset.Format)).Msg("Importing dataset")

	var format formats.Format

	switch dataset.Format {
	case datasets.DataSetFormatTimetableCSV:
		format = &timetablecsv.TimetableCSV{}
	case datasets.DataSetFormatFaresCSV:
		format = &farescsv.FaresCSV{}
	default:
		return fmt.Errorf("unrecognised format %s", dataset.Format)
	}

	source := dataset.Source
	if isValidURL(dataset.Source) {
		tempFile, err := tempDownloadFile(dataset.Source)
		if err != nil {
			return err
		}

		source = tempFile.Name()
		defer os.Remove(tempFile.Name())
	}

	file, err := os.Open(source)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := format.ParseFile(file); err != nil {
		return err
	}

	return format.Import(&ftdf.DataSourceReference{
		OriginalFormat: string(dataset.Format),
		Provider:       dataset.Provider.Name,
		DatasetID:      dataset.Identifier,
		Timestamp:      fmt.Sprintf("%d", time.Now().Unix()),
	})
}

func isValidURL(value string) bool {
	parsed, err := url.ParseRequestURI(value)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

func tempDownloadFile(source string) (*os.File, error) {
	resp, err := http.Get(source)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset source returned HTTP %d", resp.StatusCode)
	}

	tempFile, err := os.CreateTemp(os.TempDir(), "okiferry-dataset-")
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(tempFile, resp.Body); err != nil {
		return nil, err
	}

	if _, err := tempFile.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return tempFile, nil
}
