package source

import (
	"io"
	"os"

	"github.com/yanun0323/errors"

	"github.com/Shivesh777/nanotick/internal/codec"
	"github.com/Shivesh777/nanotick/internal/schema"
	"github.com/Shivesh777/nanotick/internal/ticklog"
	"github.com/Shivesh777/nanotick/pkg/exception"
)

func loadTicklogDir(dir string) ([]schema.Event, error) {
	var events []schema.Event
	opts := ticklog.ReaderOptions{MaxPayloadSize: codec.EventPayloadSize}
	err := ticklog.Walk(dir, "", opts, func(_ uint64, payload []byte) error {
		ev, ok := codec.DecodeEvent(payload)
		if !ok {
			return errors.Wrapf(exception.ErrInvalidFieldValue, "payload size: %d", len(payload))
		}
		events = append(events, ev)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "walk ticklog")
	}
	return events, nil
}

func loadTicklogFile(path string) ([]schema.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open ticklog segment")
	}
	defer file.Close()

	var events []schema.Event
	r := ticklog.NewReader(file, ticklog.ReaderOptions{MaxPayloadSize: codec.EventPayloadSize})
	for {
		_, payload, err := r.Next()
		if err != nil {
			if err == io.EOF {
				return events, nil
			}
			return nil, errors.Wrapf(err, "read %s", path)
		}
		ev, ok := codec.DecodeEvent(payload)
		if !ok {
			return nil, errors.Wrapf(exception.ErrInvalidFieldValue, "payload size: %d", len(payload))
		}
		events = append(events, ev)
	}
}
