package cargo

import (
	"context"
	"io"
	"os"

	"github.com/matzehuels/cargodeps/pkg/deps"
	"github.com/matzehuels/cargodeps/pkg/errors"
)

// StdinPath makes [MetadataFile] read from standard input.
const StdinPath = "-"

// MetadataFile loads the graph from saved `cargo metadata` output.
type MetadataFile struct {
	Path  string
	Stdin io.Reader // used when Path is StdinPath (default: os.Stdin)
}

// NewMetadataFile creates a provider reading path, or stdin for "-".
func NewMetadataFile(path string) *MetadataFile {
	return &MetadataFile{Path: path, Stdin: os.Stdin}
}

func (f *MetadataFile) Source() string {
	if f.Path == StdinPath {
		return "stdin"
	}
	return f.Path
}

func (f *MetadataFile) Graph(context.Context) (*deps.Graph, error) {
	data, err := f.read()
	if err != nil {
		return nil, err
	}
	return ParseMetadata(data)
}

func (f *MetadataFile) read() ([]byte, error) {
	if f.Path == StdinPath {
		r := f.Stdin
		if r == nil {
			r = os.Stdin
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "read metadata from stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "metadata file %s", f.Path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "read metadata file %s", f.Path)
	}
	return data, nil
}
