package formats

import (
	"io"

	"github.com/okiferry/okiferry/pkg/ftdf"
)

type Format interface {
	ParseFile(io.Reader) error
	Import(*ftdf.DataSourceReference) error
}
