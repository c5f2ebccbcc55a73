package main

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func encodingByLabel(label string) (encoding.Encoding, error) {
	switch label {
	case "", "UTF-8", "utf-8", "UTF8", "utf8":
		return nil, nil
	case "GB2312", "gb2312":
		return simplifiedchinese.GBK, nil
	case "GBK", "gbk":
		return simplifiedchinese.GBK, nil
	case "GB18030", "gb18030":
		return simplifiedchinese.GB18030, nil
	case "BIG5", "big5", "Big5":
		return traditionalchinese.Big5, nil
	default:
		return nil, errors.Errorf("unsupported encoding %q", label)
	}
}

// readInput reads path (or stdin if empty), transcoding from inEnc to
// UTF-8 and stripping a UTF-8 BOM if present.
func readInput(path, inEnc string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", errors.Wrapf(err, "open input %q", path)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrapf(err, "read input")
	}

	enc, err := encodingByLabel(inEnc)
	if err != nil {
		return "", err
	}
	if enc != nil {
		data, err = enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", errors.Wrapf(err, "decode input as %s", inEnc)
		}
	} else {
		data = bytes.TrimPrefix(data, utf8BOM)
	}
	return string(data), nil
}

// writeOutput writes text to path (or stdout if empty), transcoding from
// UTF-8 to outEnc. A UTF-8 BOM is stripped before transcoding to a
// non-UTF-8 encoding, per the CLI's documented behavior.
func writeOutput(path, outEnc, text string) error {
	data := []byte(text)

	enc, err := encodingByLabel(outEnc)
	if err != nil {
		return err
	}
	if enc != nil {
		data = bytes.TrimPrefix(data, utf8BOM)
		data, err = enc.NewEncoder().Bytes(data)
		if err != nil {
			return errors.Wrapf(err, "encode output as %s", outEnc)
		}
	}

	w := io.Writer(os.Stdout)
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "create output %q", path)
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrapf(err, "write output")
	}
	return nil
}
