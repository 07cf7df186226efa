package network

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func ReadDescriptor(reader io.Reader) (*File, error) {
	file := &File{}

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	if err := decoder.Decode(file); err != nil {
		return nil, errors.Wrap(err, "failed to decode descriptor")
	}

	file.Method = ParseMethod(string(file.Method))

	return file, nil
}

func LoadDescriptor(path string) (*File, error) {
	reader, err := os.Open(path)

	if err != nil {
		return nil, errors.Wrapf(err, "failed to open descriptor %s", path)
	}

	defer reader.Close()

	return ReadDescriptor(reader)
}
